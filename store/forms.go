package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mbolis/form-weaver/model"
)

func (s *Store) CreateForm(ctx context.Context, ownerID, title, description string, published bool) (form model.Form, err error) {
	if strings.TrimSpace(title) == "" {
		return form, ErrInvalidInput
	}

	now := time.Now()
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO form (owner_id, title, description, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		ownerID, title, description, published, now, now,
	).Scan(&form.ID)
	if err != nil {
		return
	}

	form.OwnerID = ownerID
	form.Title = title
	form.Description = description
	form.Published = published
	form.CreatedAt = now
	form.UpdatedAt = now
	return
}

func (s *Store) ListForms(ctx context.Context, ownerID string) ([]model.Form, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, title, description, published, created_at, updated_at
		FROM form
		WHERE owner_id = ?
		ORDER BY updated_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := []model.Form{}
	for rows.Next() {
		f := model.Form{}
		err = rows.Scan(&f.ID, &f.OwnerID, &f.Title, &f.Description, &f.Published, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, rows.Err()
}

// GetForm loads a form together with its ordered steps and fields.
func (s *Store) GetForm(ctx context.Context, id int) (form model.FormWithSteps, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, published, created_at, updated_at
		FROM form
		WHERE id = ?`,
		id,
	).Scan(&form.ID, &form.OwnerID, &form.Title, &form.Description, &form.Published, &form.CreatedAt, &form.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return form, ErrNotFound
	}
	if err != nil {
		return
	}

	form.Steps, err = s.loadSteps(ctx, form.ID)
	return
}

func (s *Store) loadSteps(ctx context.Context, formID int) ([]model.Step, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, form_id, title, description, order_index
		FROM form_step
		WHERE form_id = ?
		ORDER BY order_index, id`,
		formID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := []model.Step{}
	for rows.Next() {
		step := model.Step{}
		err = rows.Scan(&step.ID, &step.FormID, &step.Title, &step.Description, &step.Order)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range steps {
		steps[i].Fields, err = s.loadFields(ctx, steps[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return steps, nil
}

func (s *Store) UpdateForm(ctx context.Context, id int, patch FormPatch) (form model.Form, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT id, owner_id, title, description, published, created_at
			FROM form
			WHERE id = ?`,
			id,
		).Scan(&form.ID, &form.OwnerID, &form.Title, &form.Description, &form.Published, &form.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if patch.Title != nil {
			form.Title = *patch.Title
		}
		if patch.Description != nil {
			form.Description = *patch.Description
		}
		if patch.Published != nil {
			form.Published = *patch.Published
		}
		form.UpdatedAt = time.Now()

		_, err = tx.ExecContext(ctx, `
			UPDATE form
			SET title = ?, description = ?, published = ?, updated_at = ?
			WHERE id = ?`,
			form.Title, form.Description, form.Published, form.UpdatedAt, id,
		)
		return err
	})
	return
}

// DeleteForm removes the form and every descendant step, field and
// submission in a single transaction. The cascade is orchestrated here, not
// delegated to the storage engine, so either the full subtree is gone or
// nothing changed.
func (s *Store) DeleteForm(ctx context.Context, id int) (found bool, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM form WHERE id = ?`, id).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		// children first: fields, steps, submissions, then the form itself
		_, err = tx.ExecContext(ctx, `
			DELETE FROM form_field
			WHERE step_id IN (SELECT id FROM form_step WHERE form_id = ?)`,
			id,
		)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM form_step WHERE form_id = ?`, id)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM submission WHERE form_id = ?`, id)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM form WHERE id = ?`, id)
		return err
	})
	return
}

// PublishForm toggles the published flag.
func (s *Store) PublishForm(ctx context.Context, id int) (form model.Form, err error) {
	err = s.db.QueryRowContext(ctx, `
		UPDATE form
		SET published = NOT published, updated_at = ?
		WHERE id = ?
		RETURNING id, owner_id, title, description, published, created_at, updated_at`,
		time.Now(), id,
	).Scan(&form.ID, &form.OwnerID, &form.Title, &form.Description, &form.Published, &form.CreatedAt, &form.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return form, ErrNotFound
	}
	return
}
