// Package ai drafts multi-step forms from natural-language prompts. An
// external generator produces a candidate, the normalizer repairs it, the
// quality gate judges it, and the blueprint library covers every failure:
// the pipeline always terminates in a valid draft.
package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mbolis/form-weaver/log"
	"github.com/mbolis/form-weaver/model"
)

const systemInstruction = "You are an expert form designer. Produce a multi-step form JSON that is production-ready. " +
	"Rules: " +
	"1) Return ONLY valid JSON. " +
	"2) Always include non-empty strings for title, description, step titles, field labels. " +
	"3) Always include placeholder as a string (empty string allowed). " +
	"4) For select/radio fields, include options array with at least 2 items. " +
	"5) For other field types, options must be an empty array. " +
	"6) Field types must be one of: text, number, select, checkbox, radio, textarea, date. " +
	"7) Use 2-4 steps with 2-6 fields per step when possible. " +
	`Response format: {"title":"Form Title","description":"Form Description","steps":[{"title":"Step Title","description":"Step Description","fields":[{"type":"text","label":"Field Label","placeholder":"Placeholder","required":true,"options":[{"label":"Option 1","value":"opt1"}]}]}]}`

type GenerateRequest struct {
	Prompt     string `json:"prompt"`
	Model      string `json:"model"`
	Complexity string `json:"complexity"`
	Tone       string `json:"tone"`
}

type Pipeline struct {
	generator TextGenerator
}

// NewPipeline wires the draft pipeline. A nil generator means no credential
// is configured: every request goes straight to the blueprint path.
func NewPipeline(generator TextGenerator) *Pipeline {
	return &Pipeline{generator}
}

// GenerateForm turns a prompt into a normalized draft. Generator failures
// are absorbed, never surfaced: every branch terminates in a valid draft.
func (p *Pipeline) GenerateForm(ctx context.Context, req GenerateRequest) model.Draft {
	if p.generator == nil {
		return p.fallback(req)
	}

	prompt := req.Prompt + "\n\nAdditional guidance: " + complexityHint(req.Complexity) + " " + toneHint(req.Tone)
	text, err := p.generator.Generate(ctx, systemInstruction, prompt, req.Model)
	if err != nil {
		log.Debugf("ai.generate: %s", err)
		return p.fallback(req)
	}
	if strings.TrimSpace(text) == "" {
		log.Debug("ai.generate: empty response")
		return p.fallback(req)
	}

	var draft model.Draft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		log.Debugf("ai.generate.parse: %s", err)
		return p.fallback(req)
	}

	normalized := Normalize(draft)
	if tooSmall(normalized) || looksGeneric(normalized) {
		if blueprint, ok := Blueprint(req.Prompt, req.Complexity, req.Tone); ok {
			return Normalize(blueprint)
		}
		// no blueprint matched: a thin generator draft still beats a
		// synthesized one
		return normalized
	}
	return normalized
}

func (p *Pipeline) fallback(req GenerateRequest) model.Draft {
	if blueprint, ok := Blueprint(req.Prompt, req.Complexity, req.Tone); ok {
		return Normalize(blueprint)
	}
	return Normalize(fallbackDraft(req.Prompt, req.Complexity, req.Tone))
}

func complexityHint(complexity string) string {
	switch complexity {
	case "compact":
		return "Use 1-2 steps with 2-3 fields each."
	case "detailed":
		return "Use 3-4 steps with 4-6 fields each."
	default:
		return "Use 2-3 steps with 3-5 fields each."
	}
}

func toneHint(tone string) string {
	switch tone {
	case "friendly":
		return "Use warm, friendly labels and descriptions."
	case "formal":
		return "Use formal, business-ready language."
	default:
		return "Use professional, clear language."
	}
}
