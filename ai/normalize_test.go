package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-weaver/model"
)

func TestNormalize_BlankTitlesGetPlaceholders(t *testing.T) {
	out := Normalize(model.Draft{
		Title: "   ",
		Steps: []model.DraftStep{
			{Title: "", Fields: []model.DraftField{
				{Type: "text", Label: "  "},
			}},
		},
	})

	assert.Equal(t, "Generated Form", out.Title)
	require.Len(t, out.Steps, 1)
	assert.Equal(t, "Step", out.Steps[0].Title)
	require.Len(t, out.Steps[0].Fields, 1)
	assert.Equal(t, "Field", out.Steps[0].Fields[0].Label)
}

func TestNormalize_UnknownTypeCollapsesToText(t *testing.T) {
	out := Normalize(model.Draft{
		Title: "Quiz",
		Steps: []model.DraftStep{
			{Title: "One", Fields: []model.DraftField{
				{Type: "slider", Label: "Rate us"},
				{Type: "TEXTAREA", Label: "Comments"},
			}},
		},
	})

	require.Len(t, out.Steps[0].Fields, 2)
	assert.Equal(t, "text", out.Steps[0].Fields[0].Type)
	assert.Equal(t, "textarea", out.Steps[0].Fields[1].Type)
}

func TestNormalize_ChoiceFieldsGetDefaultOptions(t *testing.T) {
	out := Normalize(model.Draft{
		Title: "Poll",
		Steps: []model.DraftStep{
			{Title: "One", Fields: []model.DraftField{
				{Type: "select", Label: "Pick one"},
				{Type: "radio", Label: "Pick another", Options: []model.Option{{Label: "A", Value: "a"}}},
			}},
		},
	})

	fields := out.Steps[0].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, defaultOptions, fields[0].Options)
	assert.Equal(t, []model.Option{{Label: "A", Value: "a"}}, fields[1].Options)
}

func TestNormalize_NonChoiceFieldsLoseOptions(t *testing.T) {
	out := Normalize(model.Draft{
		Title: "Survey",
		Steps: []model.DraftStep{
			{Title: "One", Fields: []model.DraftField{
				{Type: "text", Label: "Name", Options: []model.Option{{Label: "Bogus", Value: "bogus"}}},
			}},
		},
	})

	assert.Nil(t, out.Steps[0].Fields[0].Options)
}

func TestNormalize_PreservesGoodDraft(t *testing.T) {
	in := model.Draft{
		Title:       "Job Application",
		Description: "Apply here",
		Steps: []model.DraftStep{
			{Title: "Contact", Description: "How to reach you", Fields: []model.DraftField{
				{Type: "text", Label: "Full name", Placeholder: "Jane Doe", Required: true},
			}},
		},
	}

	out := Normalize(in)
	assert.Equal(t, in, out)
}
