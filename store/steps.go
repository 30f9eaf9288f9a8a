package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mbolis/form-weaver/model"
)

// CreateStep appends a step to the form: its order is the current step
// count, so sibling orders stay a contiguous 0..n-1 sequence.
func (s *Store) CreateStep(ctx context.Context, formID int, title, description string) (step model.Step, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM form WHERE id = ?`, formID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx,
			`SELECT count(*) FROM form_step WHERE form_id = ?`, formID,
		).Scan(&step.Order)
		if err != nil {
			return err
		}

		return tx.QueryRowContext(ctx, `
			INSERT INTO form_step (form_id, title, description, order_index)
			VALUES (?, ?, ?, ?)
			RETURNING id`,
			formID, title, description, step.Order,
		).Scan(&step.ID)
	})
	if err != nil {
		return
	}

	step.FormID = formID
	step.Title = title
	step.Description = description
	step.Fields = []model.Field{}
	return
}

func (s *Store) UpdateStep(ctx context.Context, id int, patch StepPatch) (step model.Step, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		return updateStep(ctx, tx, id, patch, &step)
	})
	return
}

func updateStep(ctx context.Context, tx *sql.Tx, id int, patch StepPatch, step *model.Step) error {
	err := tx.QueryRowContext(ctx, `
		SELECT id, form_id, title, description, order_index
		FROM form_step
		WHERE id = ?`,
		id,
	).Scan(&step.ID, &step.FormID, &step.Title, &step.Description, &step.Order)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if patch.Title != nil {
		step.Title = *patch.Title
	}
	if patch.Description != nil {
		step.Description = *patch.Description
	}
	if patch.Order != nil {
		step.Order = *patch.Order
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE form_step
		SET title = ?, description = ?, order_index = ?
		WHERE id = ?`,
		step.Title, step.Description, step.Order, id,
	)
	return err
}

// DeleteStep removes the step and its fields, then reindexes the surviving
// sibling steps back to a contiguous sequence.
func (s *Store) DeleteStep(ctx context.Context, id int) (found bool, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var formID int
		err := tx.QueryRowContext(ctx,
			`SELECT form_id FROM form_step WHERE id = ?`, id,
		).Scan(&formID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		_, err = tx.ExecContext(ctx, `DELETE FROM form_field WHERE step_id = ?`, id)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM form_step WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return reindex(ctx, tx, "form_step", "form_id", formID)
	})
	return
}

// ReorderSteps applies each supplied order value independently through the
// update path. It does not validate contiguity or uniqueness; unknown step
// ids are skipped. Concurrent reorders against the same form can interleave.
func (s *Store) ReorderSteps(ctx context.Context, formID int, items []ReorderItem) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			item := item
			var step model.Step
			err := updateStep(ctx, tx, item.ID, StepPatch{Order: &item.Order}, &step)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
