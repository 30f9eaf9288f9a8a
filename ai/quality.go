package ai

import (
	"strings"

	"github.com/mbolis/form-weaver/model"
)

// The quality gate decides whether a normalized draft is worth showing the
// user or should be replaced by a blueprint.

func tooSmall(d model.Draft) bool {
	if len(d.Steps) < 2 {
		return true
	}
	return d.FieldCount() < 4
}

var genericStepTitles = map[string]bool{
	"step 1":                 true,
	"step 2":                 true,
	"step 3":                 true,
	"basics":                 true,
	"details":                true,
	"additional info":        true,
	"additional information": true,
}

var genericFieldLabels = map[string]bool{
	"field":           true,
	"sample question": true,
	"question":        true,
	"new field":       true,
}

// looksGeneric rejects a draft when at least half of its step titles, or at
// least half of its field labels, come from the fixed generic sets.
func looksGeneric(d model.Draft) bool {
	if len(d.Steps) == 0 {
		return true
	}

	genericSteps := 0
	genericFields := 0
	totalFields := 0
	for _, step := range d.Steps {
		if genericStepTitles[strings.ToLower(strings.TrimSpace(step.Title))] {
			genericSteps++
		}
		for _, field := range step.Fields {
			totalFields++
			if genericFieldLabels[strings.ToLower(strings.TrimSpace(field.Label))] {
				genericFields++
			}
		}
	}

	if genericSteps >= max(1, len(d.Steps)/2) {
		return true
	}
	if totalFields > 0 && genericFields >= max(1, totalFields/2) {
		return true
	}
	return false
}
