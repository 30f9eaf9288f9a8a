package ai

import (
	"strings"

	"github.com/mbolis/form-weaver/model"
)

// fallbackDraft synthesizes a minimal draft when no blueprint matched: it
// composes topical fragments matched independently against the prompt,
// defaulting to a generic two-step draft when none apply.
func fallbackDraft(prompt, complexity, tone string) model.Draft {
	p := strings.ToLower(prompt)
	style := labelStyle(tone)

	title := prompt
	if strings.TrimSpace(title) == "" {
		title = "Generated Form"
	}

	var steps []model.DraftStep
	if strings.Contains(p, "screen") || strings.Contains(p, "qualification") {
		steps = append(steps, model.DraftStep{
			Title:       "Screening",
			Description: "Initial qualification questions.",
			Fields: []model.DraftField{
				field("select", style+" your eligibility status", "", true,
					option("Eligible", "eligible"), option("Not sure", "unsure")),
				field("checkbox", style+" confirmation of requirements", "", true),
			},
		})
	}
	if strings.Contains(p, "experience") || strings.Contains(p, "resume") {
		steps = append(steps, model.DraftStep{
			Title:       "Experience",
			Description: "Tell us about your background.",
			Fields: []model.DraftField{
				field("textarea", style+" your recent experience", "", true),
				field("text", style+" your primary role", "", true),
			},
		})
	}
	if strings.Contains(p, "reference") {
		steps = append(steps, model.DraftStep{
			Title:       "References",
			Description: "Provide professional references.",
			Fields: []model.DraftField{
				field("text", style+" reference name", "", true),
				field("text", style+" reference email", "", true),
			},
		})
	}
	if strings.Contains(p, "availability") || strings.Contains(p, "schedule") {
		steps = append(steps, model.DraftStep{
			Title:       "Availability",
			Description: "Confirm your preferred schedule.",
			Fields: []model.DraftField{
				field("select", style+" preferred start date", "", false,
					option("Immediate", "immediate"), option("2-4 weeks", "2-4w")),
				field("text", style+" time zone", "", false),
			},
		})
	}

	if len(steps) == 0 {
		steps = append(steps,
			model.DraftStep{
				Title:       "Basics",
				Description: "Start with the essentials.",
				Fields: []model.DraftField{
					field("text", style+" your name", "", true),
					field("text", style+" your email", "", true),
				},
			},
			model.DraftStep{
				Title:       "Details",
				Description: "Add the key details.",
				Fields: []model.DraftField{
					field("textarea", style+" more context", "", false),
					field("select", style+" priority level", "", false,
						option("High", "high"), option("Normal", "normal")),
				},
			},
		)
	}

	if complexity == "detailed" && len(steps) < 3 {
		steps = append(steps, model.DraftStep{
			Title:       "Additional Info",
			Description: "Optional details to help us personalize.",
			Fields: []model.DraftField{
				field("textarea", style+" any extra notes", "", false),
				field("text", style+" preferred contact method", "", false),
			},
		})
	}
	if complexity == "compact" && len(steps) > 2 {
		steps = steps[:2]
	}

	return model.Draft{
		Title:       title,
		Description: "Generated from prompt: " + prompt,
		Steps:       steps,
	}
}
