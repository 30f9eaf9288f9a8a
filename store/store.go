// Package store owns CRUD and cascade semantics over the
// Form/Step/Field/Submission graph, plus the read-only template catalog.
// Every mutating operation runs inside its own transaction.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound reports an identity that does not resolve to a persisted
	// entity. Callers surface it as an "absent" result, never a failure.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput reports a creation request rejected before any
	// persistence occurred.
	ErrInvalidInput = errors.New("invalid input")
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db}
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// marshalColumn serializes an opaque value for a TEXT column. nil becomes
// the empty string so absent values round-trip as absent.
func marshalColumn(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalColumn(s string, dst any) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), dst)
}

// reindex rewrites order_index into a contiguous 0..n-1 sequence for the
// siblings of one parent, preserving their current relative order.
func reindex(ctx context.Context, tx *sql.Tx, table, parentColumn string, parentID int) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM `+table+` WHERE `+parentColumn+` = ? ORDER BY order_index, id`,
		parentID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, id := range ids {
		_, err := tx.ExecContext(ctx,
			`UPDATE `+table+` SET order_index = ? WHERE id = ?`,
			i, id,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
