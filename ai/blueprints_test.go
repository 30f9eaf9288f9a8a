package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-weaver/model"
)

func TestBlueprint_KeywordTriggers(t *testing.T) {
	cases := []struct {
		prompt string
		title  string
	}{
		{"a blood donation intake form", "Blood Donation Intake"},
		{"screen blood donor eligibility", "Blood Donation Intake"},
		{"hiring form for a new candidate", "Job Application"},
		{"conference attendee signup", "Event Registration"},
		{"post-purchase NPS survey", "Customer Feedback"},
		{"patient intake for our clinic", "Patient Intake"},
		{"report a bug in the app", "Support Ticket"},
		{"student enrollment for the training", "Course Registration"},
		{"apartment lease for a new tenant", "Rental Application"},
	}

	for _, c := range cases {
		draft, ok := Blueprint(c.prompt, "", "")
		require.True(t, ok, "prompt %q should match a blueprint", c.prompt)
		assert.Equal(t, c.title, draft.Title, "prompt %q", c.prompt)
	}
}

func TestBlueprint_MatchingIsCaseInsensitive(t *testing.T) {
	draft, ok := Blueprint("BLOOD DONATION drive", "", "")
	require.True(t, ok)
	assert.Equal(t, "Blood Donation Intake", draft.Title)
}

func TestBlueprint_FirstMatchWins(t *testing.T) {
	// "blood donation event" matches both the blood rule and the event
	// rule; the blood rule is listed first.
	draft, ok := Blueprint("blood donation event", "", "")
	require.True(t, ok)
	assert.Equal(t, "Blood Donation Intake", draft.Title)
}

func TestBlueprint_NoMatch(t *testing.T) {
	_, ok := Blueprint("a completely unrelated topic", "", "")
	assert.False(t, ok)
}

func TestBlueprint_DetailedFallsBackToGenericThreeSteps(t *testing.T) {
	draft, ok := Blueprint("a completely unrelated topic", "detailed", "")
	require.True(t, ok)
	require.Len(t, draft.Steps, 3)
	assert.Equal(t, "Basics", draft.Steps[0].Title)
	assert.Equal(t, "Details", draft.Steps[1].Title)
	assert.Equal(t, "Additional Info", draft.Steps[2].Title)
}

func TestBlueprint_ToneShapesLabels(t *testing.T) {
	friendly, ok := Blueprint("blood donation", "", "friendly")
	require.True(t, ok)
	formal, ok := Blueprint("blood donation", "", "formal")
	require.True(t, ok)

	contact := friendly.Steps[len(friendly.Steps)-1]
	assert.Equal(t, "Please share your full name", contact.Fields[0].Label)
	contact = formal.Steps[len(formal.Steps)-1]
	assert.Equal(t, "Kindly provide your full name", contact.Fields[0].Label)
}

func TestBlueprint_Deterministic(t *testing.T) {
	a, ok := Blueprint("job application", "detailed", "formal")
	require.True(t, ok)
	b, ok := Blueprint("job application", "detailed", "formal")
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestBlueprint_BloodDonationShape(t *testing.T) {
	draft, ok := Blueprint("blood donation", "", "")
	require.True(t, ok)
	require.Len(t, draft.Steps, 4)
	assert.Equal(t, "Eligibility", draft.Steps[0].Title)
	assert.Equal(t, "Health History", draft.Steps[1].Title)
	assert.Equal(t, "Donation Details", draft.Steps[2].Title)
	assert.Equal(t, "Contact & Consent", draft.Steps[3].Title)

	// every choice field ships at least two options
	normalized := Normalize(draft)
	for _, step := range normalized.Steps {
		for _, f := range step.Fields {
			if model.NeedsOptions(f.Type) {
				assert.GreaterOrEqual(t, len(f.Options), 2, "field %q", f.Label)
			}
		}
	}
}

func TestFallbackDraft_TopicalFragments(t *testing.T) {
	draft := fallbackDraft("screen candidates and check availability", "", "")
	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "Screening", draft.Steps[0].Title)
	assert.Equal(t, "Availability", draft.Steps[1].Title)
}

func TestFallbackDraft_GenericTwoSteps(t *testing.T) {
	draft := fallbackDraft("something plain", "", "")
	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "Basics", draft.Steps[0].Title)
	assert.Equal(t, "Details", draft.Steps[1].Title)
	assert.Equal(t, "something plain", draft.Title)
	assert.Equal(t, "Generated from prompt: something plain", draft.Description)
}

func TestFallbackDraft_DetailedAppendsExtraStep(t *testing.T) {
	draft := fallbackDraft("something plain", "detailed", "")
	require.Len(t, draft.Steps, 3)
	assert.Equal(t, "Additional Info", draft.Steps[2].Title)
}

func TestFallbackDraft_CompactTruncates(t *testing.T) {
	draft := fallbackDraft("screen experience reference schedule", "compact", "")
	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "Screening", draft.Steps[0].Title)
	assert.Equal(t, "Experience", draft.Steps[1].Title)
}
