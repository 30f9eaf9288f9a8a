package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTemplates_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedTemplates(ctx))
	require.NoError(t, s.SeedTemplates(ctx))

	templates, err := s.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, len(templateCatalog))
}

func TestListTemplates_CatalogRoundTrips(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedTemplates(ctx))

	templates, err := s.ListTemplates(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, templates)

	byName := map[string]int{}
	for _, tpl := range templates {
		byName[tpl.Name] = tpl.ID
		assert.NotEmpty(t, tpl.Config.Title, "template %q carries a full draft", tpl.Name)
		assert.NotEmpty(t, tpl.Config.Steps, "template %q carries steps", tpl.Name)
	}

	id, ok := byName["Job Application"]
	require.True(t, ok)

	tpl, err := s.GetTemplate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Job Application", tpl.Name)
	assert.NotEmpty(t, tpl.Config.Steps)
}

func TestGetTemplate_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTemplate(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
