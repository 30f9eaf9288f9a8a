package ai

import (
	"strings"

	"github.com/mbolis/form-weaver/model"
)

var defaultOptions = []model.Option{
	{Label: "Option 1", Value: "option_1"},
	{Label: "Option 2", Value: "option_2"},
}

// Normalize repairs an untrusted candidate draft into a schema-valid one,
// whatever its source. It never fails: unknown field types collapse to text,
// blank titles and labels get generic placeholders, select/radio fields get
// a synthetic choice set when none was supplied, other types get theirs
// stripped.
func Normalize(input model.Draft) model.Draft {
	out := model.Draft{
		Title:       input.Title,
		Description: input.Description,
		Steps:       make([]model.DraftStep, 0, len(input.Steps)),
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = "Generated Form"
	}

	for _, step := range input.Steps {
		normalized := model.DraftStep{
			Title:       step.Title,
			Description: step.Description,
			Fields:      make([]model.DraftField, 0, len(step.Fields)),
		}
		if strings.TrimSpace(normalized.Title) == "" {
			normalized.Title = "Step"
		}

		for _, field := range step.Fields {
			fieldType := strings.ToLower(field.Type)
			if !model.ValidFieldType(fieldType) {
				fieldType = model.DefaultFieldType
			}

			label := field.Label
			if strings.TrimSpace(label) == "" {
				label = "Field"
			}

			options := field.Options
			if model.NeedsOptions(fieldType) {
				if len(options) == 0 {
					options = defaultOptions
				}
			} else {
				options = nil
			}

			normalized.Fields = append(normalized.Fields, model.DraftField{
				Type:        fieldType,
				Label:       label,
				Placeholder: field.Placeholder,
				Required:    field.Required,
				Options:     options,
			})
		}

		out.Steps = append(out.Steps, normalized)
	}
	return out
}
