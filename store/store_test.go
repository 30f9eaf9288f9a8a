package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-weaver/config"
	"github.com/mbolis/form-weaver/database"
)

// newTestStore opens a throwaway file-backed database with the real schema.
// A file, not :memory:, because the pool would hand each connection its own
// empty in-memory database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Open(config.Config{
		DBUrl: filepath.Join(t.TempDir(), "test.sqlite"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db)
}

func mustCreateForm(t *testing.T, s *Store, ownerID, title string) int {
	t.Helper()
	form, err := s.CreateForm(context.Background(), ownerID, title, "", false)
	require.NoError(t, err)
	return form.ID
}

func mustCreateStep(t *testing.T, s *Store, formID int, title string) int {
	t.Helper()
	step, err := s.CreateStep(context.Background(), formID, title, "")
	require.NoError(t, err)
	return step.ID
}

func mustCreateField(t *testing.T, s *Store, stepID int, label string) int {
	t.Helper()
	field, err := s.CreateField(context.Background(), stepID, FieldInput{Type: "text", Label: label})
	require.NoError(t, err)
	return field.ID
}

func count(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	err := s.db.QueryRow(`SELECT count(*) FROM ` + table).Scan(&n)
	require.NoError(t, err)
	return n
}
