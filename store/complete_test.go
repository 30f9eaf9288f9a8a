package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-weaver/model"
)

func TestCreateCompleteForm(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form, err := s.CreateCompleteForm(ctx, "7", CompleteFormInput{
		Title:       "Volunteer Signup",
		Description: "Join us",
		Steps: []CompleteStepInput{
			{Title: "Contact", Fields: []CompleteFieldInput{
				{Type: "text", Label: "Full name", Required: true},
				{Type: "text", Label: "Email", Required: true},
			}},
			{Title: "Preferences", Fields: []CompleteFieldInput{
				{Type: "select", Label: "Shift", Options: []model.Option{
					{Label: "Morning", Value: "am"},
					{Label: "Evening", Value: "pm"},
				}},
			}},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, form.ID)
	assert.False(t, form.Published, "drafts start unpublished")

	got, err := s.GetForm(ctx, form.ID)
	require.NoError(t, err)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, 0, got.Steps[0].Order)
	assert.Equal(t, 1, got.Steps[1].Order)
	require.Len(t, got.Steps[0].Fields, 2)
	assert.Equal(t, 0, got.Steps[0].Fields[0].Order)
	assert.Equal(t, 1, got.Steps[0].Fields[1].Order)
	require.Len(t, got.Steps[1].Fields, 1)
	assert.Len(t, got.Steps[1].Fields[0].Options, 2)
}

func TestCreateCompleteForm_AppliesDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form, err := s.CreateCompleteForm(ctx, "7", CompleteFormInput{
		Title: "Messy Draft",
		Steps: []CompleteStepInput{
			{Title: "   ", Fields: []CompleteFieldInput{
				{Type: "bogus", Label: "Free text"},
				{Type: "TEXT", Label: "   "},
			}},
		},
	})
	require.NoError(t, err)

	require.Len(t, form.Steps, 1)
	assert.Equal(t, "Untitled Step", form.Steps[0].Title)
	require.Len(t, form.Steps[0].Fields, 2)
	assert.Equal(t, "text", form.Steps[0].Fields[0].Type)
	assert.Equal(t, "text", form.Steps[0].Fields[1].Type)
	assert.Equal(t, "Field", form.Steps[0].Fields[1].Label)
}

func TestCreateCompleteForm_RejectsInvalidInput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCompleteForm(ctx, "7", CompleteFormInput{Title: "  ", Steps: []CompleteStepInput{}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateCompleteForm(ctx, "7", CompleteFormInput{Title: "No steps"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// nothing was persisted by the rejected requests
	assert.Equal(t, 0, count(t, s, "form"))
}

func TestCreateCompleteForm_EmptyStepListIsAllowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form, err := s.CreateCompleteForm(ctx, "7", CompleteFormInput{
		Title: "Shell",
		Steps: []CompleteStepInput{},
	})
	require.NoError(t, err)
	assert.Empty(t, form.Steps)
}
