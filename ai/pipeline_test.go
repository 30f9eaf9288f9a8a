package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error

	lastSystem string
	lastPrompt string
	lastModel  string
}

func (s *stubGenerator) Generate(ctx context.Context, system, prompt, model string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	s.lastModel = model
	return s.text, s.err
}

const richDraftJSON = `{
	"title": "Volunteer Signup",
	"description": "Join our volunteer program",
	"steps": [
		{"title": "Contact", "fields": [
			{"type": "text", "label": "Full name", "required": true},
			{"type": "text", "label": "Email", "required": true}
		]},
		{"title": "Preferences", "fields": [
			{"type": "select", "label": "Preferred shift", "options": [
				{"label": "Morning", "value": "am"}, {"label": "Evening", "value": "pm"}
			]},
			{"type": "textarea", "label": "Why do you want to volunteer?"}
		]}
	]
}`

func TestGenerateForm_NoGeneratorUsesBlueprint(t *testing.T) {
	p := NewPipeline(nil)

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "blood donation drive"})

	assert.Equal(t, "Blood Donation Intake", draft.Title)
	require.Len(t, draft.Steps, 4)
}

func TestGenerateForm_NoGeneratorNoBlueprintSynthesizes(t *testing.T) {
	p := NewPipeline(nil)

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "something plain"})

	assert.Equal(t, "something plain", draft.Title)
	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "Basics", draft.Steps[0].Title)
}

func TestGenerateForm_AcceptsRichDraft(t *testing.T) {
	gen := &stubGenerator{text: richDraftJSON}
	p := NewPipeline(gen)

	draft := p.GenerateForm(context.Background(), GenerateRequest{
		Prompt: "volunteer signup",
		Model:  "test-model",
	})

	assert.Equal(t, "Volunteer Signup", draft.Title)
	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "test-model", gen.lastModel)
	assert.Contains(t, gen.lastPrompt, "volunteer signup")
	assert.Contains(t, gen.lastPrompt, "Additional guidance:")
	assert.Contains(t, gen.lastSystem, "expert form designer")
}

func TestGenerateForm_GeneratorErrorFallsBack(t *testing.T) {
	p := NewPipeline(&stubGenerator{err: errors.New("boom")})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "blood donation"})

	assert.Equal(t, "Blood Donation Intake", draft.Title)
}

func TestGenerateForm_UnparseableResponseFallsBack(t *testing.T) {
	p := NewPipeline(&stubGenerator{text: "sorry, I cannot do that"})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "blood donation"})

	assert.Equal(t, "Blood Donation Intake", draft.Title)
}

func TestGenerateForm_EmptyResponseFallsBack(t *testing.T) {
	p := NewPipeline(&stubGenerator{text: "   "})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "something plain"})

	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "Basics", draft.Steps[0].Title)
}

func TestGenerateForm_GenericDraftReplacedByBlueprint(t *testing.T) {
	generic := `{"title": "Form", "steps": [
		{"title": "Step 1", "fields": [{"type": "text", "label": "Field"}, {"type": "text", "label": "Field"}]},
		{"title": "Step 2", "fields": [{"type": "text", "label": "Field"}, {"type": "text", "label": "Field"}]}
	]}`
	p := NewPipeline(&stubGenerator{text: generic})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "patient intake"})

	assert.Equal(t, "Patient Intake", draft.Title)
}

func TestGenerateForm_TooSmallDraftReplacedByBlueprint(t *testing.T) {
	small := `{"title": "Tiny", "steps": [
		{"title": "Only", "fields": [{"type": "text", "label": "Name"}]}
	]}`
	p := NewPipeline(&stubGenerator{text: small})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "event registration"})

	assert.Equal(t, "Event Registration", draft.Title)
}

func TestGenerateForm_RejectedDraftKeptWhenNoBlueprintMatches(t *testing.T) {
	small := `{"title": "Tiny", "steps": [
		{"title": "Only", "fields": [{"type": "text", "label": "Name"}]}
	]}`
	p := NewPipeline(&stubGenerator{text: small})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "something plain"})

	assert.Equal(t, "Tiny", draft.Title)
	require.Len(t, draft.Steps, 1)
	assert.Equal(t, "Only", draft.Steps[0].Title)
}

func TestGenerateForm_NormalizesAcceptedDraft(t *testing.T) {
	sloppy := `{"title": "Checkup", "steps": [
		{"title": "One", "fields": [
			{"type": "SELECT", "label": "Pick"},
			{"type": "bogus", "label": "Free text"}
		]},
		{"title": "Two", "fields": [
			{"type": "text", "label": "Name"},
			{"type": "text", "label": "Email"}
		]}
	]}`
	p := NewPipeline(&stubGenerator{text: sloppy})

	draft := p.GenerateForm(context.Background(), GenerateRequest{Prompt: "anything at all"})

	require.Len(t, draft.Steps, 2)
	pick := draft.Steps[0].Fields[0]
	assert.Equal(t, "select", pick.Type)
	assert.Equal(t, defaultOptions, pick.Options)
	assert.Equal(t, "text", draft.Steps[0].Fields[1].Type)
}

func TestGenerateForm_HintsReachThePrompt(t *testing.T) {
	gen := &stubGenerator{text: richDraftJSON}
	p := NewPipeline(gen)

	p.GenerateForm(context.Background(), GenerateRequest{
		Prompt:     "volunteer signup",
		Complexity: "compact",
		Tone:       "friendly",
	})

	assert.Contains(t, gen.lastPrompt, "Use 1-2 steps with 2-3 fields each.")
	assert.Contains(t, gen.lastPrompt, "warm, friendly labels")
}
