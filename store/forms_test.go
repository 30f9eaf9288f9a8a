package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateForm(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form, err := s.CreateForm(ctx, "7", "Job Application", "Apply here", true)
	require.NoError(t, err)
	assert.NotZero(t, form.ID)
	assert.Equal(t, "7", form.OwnerID)
	assert.Equal(t, "Job Application", form.Title)
	assert.True(t, form.Published)

	got, err := s.GetForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, form.Title, got.Title)
	assert.Equal(t, form.OwnerID, got.OwnerID)
	assert.True(t, got.Published)
	assert.Empty(t, got.Steps)
}

func TestCreateForm_BlankTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateForm(context.Background(), "7", "   ", "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetForm_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetForm(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForms_ScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateForm(t, s, "1", "Mine A")
	mustCreateForm(t, s, "1", "Mine B")
	mustCreateForm(t, s, "2", "Theirs")

	forms, err := s.ListForms(ctx, "1")
	require.NoError(t, err)
	require.Len(t, forms, 2)
	for _, f := range forms {
		assert.Equal(t, "1", f.OwnerID)
	}
}

func TestListForms_MostRecentlyUpdatedFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := mustCreateForm(t, s, "1", "First")
	mustCreateForm(t, s, "1", "Second")

	// touching the older form moves it to the front
	title := "First (renamed)"
	_, err := s.UpdateForm(ctx, first, FormPatch{Title: &title})
	require.NoError(t, err)

	forms, err := s.ListForms(ctx, "1")
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, "First (renamed)", forms[0].Title)
}

func TestUpdateForm_PartialPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form, err := s.CreateForm(ctx, "1", "Original", "Keep me", false)
	require.NoError(t, err)

	title := "Renamed"
	updated, err := s.UpdateForm(ctx, form.ID, FormPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Keep me", updated.Description)
	assert.False(t, updated.Published)
}

func TestUpdateForm_NotFound(t *testing.T) {
	s := newTestStore(t)

	title := "x"
	_, err := s.UpdateForm(context.Background(), 12345, FormPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteForm_CascadesToWholeSubtree(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	formID := mustCreateForm(t, s, "1", "Doomed")
	step1 := mustCreateStep(t, s, formID, "One")
	step2 := mustCreateStep(t, s, formID, "Two")
	mustCreateField(t, s, step1, "A")
	mustCreateField(t, s, step1, "B")
	mustCreateField(t, s, step2, "C")
	_, err := s.CreateSubmission(ctx, formID, map[string]any{"A": "yes"})
	require.NoError(t, err)

	// an unrelated form must survive untouched
	otherForm := mustCreateForm(t, s, "1", "Survivor")
	otherStep := mustCreateStep(t, s, otherForm, "Only")
	mustCreateField(t, s, otherStep, "Kept")

	found, err := s.DeleteForm(ctx, formID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = s.GetForm(ctx, formID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ListSubmissions(ctx, formID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, count(t, s, "form"))
	assert.Equal(t, 1, count(t, s, "form_step"))
	assert.Equal(t, 1, count(t, s, "form_field"))
	assert.Equal(t, 0, count(t, s, "submission"))
}

func TestDeleteForm_NotFound(t *testing.T) {
	s := newTestStore(t)

	found, err := s.DeleteForm(context.Background(), 12345)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPublishForm_Toggles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	formID := mustCreateForm(t, s, "1", "Toggle me")

	form, err := s.PublishForm(ctx, formID)
	require.NoError(t, err)
	assert.True(t, form.Published)

	form, err = s.PublishForm(ctx, formID)
	require.NoError(t, err)
	assert.False(t, form.Published)
}

func TestPublishForm_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PublishForm(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
