package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mbolis/form-weaver/model"
)

func (s *Store) loadFields(ctx context.Context, stepID int) ([]model.Field, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, step_id, type, label, placeholder, default_value, required, order_index, options, validation_rules
		FROM form_field
		WHERE step_id = ?
		ORDER BY order_index, id`,
		stepID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := []model.Field{}
	for rows.Next() {
		var f model.Field
		var options, rules string
		err = rows.Scan(&f.ID, &f.StepID, &f.Type, &f.Label, &f.Placeholder, &f.DefaultValue, &f.Required, &f.Order, &options, &rules)
		if err != nil {
			return nil, err
		}
		if err = unmarshalColumn(options, &f.Options); err != nil {
			return nil, err
		}
		if err = unmarshalColumn(rules, &f.ValidationRules); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// CreateField appends a field to the step, order = current field count.
// Options and validation rules are stored as-is: manual edits are trusted,
// the options invariant is only imposed on AI drafts by the normalizer.
func (s *Store) CreateField(ctx context.Context, stepID int, input FieldInput) (field model.Field, err error) {
	options, err := marshalColumn(input.Options)
	if err != nil {
		return
	}
	rules, err := marshalColumn(input.ValidationRules)
	if err != nil {
		return
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM form_step WHERE id = ?`, stepID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx,
			`SELECT count(*) FROM form_field WHERE step_id = ?`, stepID,
		).Scan(&field.Order)
		if err != nil {
			return err
		}

		return tx.QueryRowContext(ctx, `
			INSERT INTO form_field (step_id, type, label, placeholder, default_value, required, order_index, options, validation_rules)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			stepID, input.Type, input.Label, input.Placeholder, input.DefaultValue, input.Required, field.Order, options, rules,
		).Scan(&field.ID)
	})
	if err != nil {
		return
	}

	field.StepID = stepID
	field.Type = input.Type
	field.Label = input.Label
	field.Placeholder = input.Placeholder
	field.DefaultValue = input.DefaultValue
	field.Required = input.Required
	field.Options = input.Options
	field.ValidationRules = input.ValidationRules
	return
}

func (s *Store) UpdateField(ctx context.Context, id int, patch FieldPatch) (field model.Field, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		return updateField(ctx, tx, id, patch, &field)
	})
	return
}

func updateField(ctx context.Context, tx *sql.Tx, id int, patch FieldPatch, field *model.Field) error {
	var options, rules string
	err := tx.QueryRowContext(ctx, `
		SELECT id, step_id, type, label, placeholder, default_value, required, order_index, options, validation_rules
		FROM form_field
		WHERE id = ?`,
		id,
	).Scan(&field.ID, &field.StepID, &field.Type, &field.Label, &field.Placeholder, &field.DefaultValue, &field.Required, &field.Order, &options, &rules)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err = unmarshalColumn(options, &field.Options); err != nil {
		return err
	}
	if err = unmarshalColumn(rules, &field.ValidationRules); err != nil {
		return err
	}

	if patch.Type != nil {
		field.Type = *patch.Type
	}
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Placeholder != nil {
		field.Placeholder = *patch.Placeholder
	}
	if patch.DefaultValue != nil {
		field.DefaultValue = *patch.DefaultValue
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if patch.Order != nil {
		field.Order = *patch.Order
	}
	if patch.Options != nil {
		field.Options = patch.Options
	}
	if patch.ValidationRules != nil {
		field.ValidationRules = patch.ValidationRules
	}

	options, err = marshalColumn(field.Options)
	if err != nil {
		return err
	}
	rules, err = marshalColumn(field.ValidationRules)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE form_field
		SET type = ?, label = ?, placeholder = ?, default_value = ?, required = ?, order_index = ?, options = ?, validation_rules = ?
		WHERE id = ?`,
		field.Type, field.Label, field.Placeholder, field.DefaultValue, field.Required, field.Order, options, rules, id,
	)
	return err
}

// DeleteField removes the field and reindexes the surviving siblings.
func (s *Store) DeleteField(ctx context.Context, id int) (found bool, err error) {
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var stepID int
		err := tx.QueryRowContext(ctx,
			`SELECT step_id FROM form_field WHERE id = ?`, id,
		).Scan(&stepID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		_, err = tx.ExecContext(ctx, `DELETE FROM form_field WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return reindex(ctx, tx, "form_field", "step_id", stepID)
	})
	return
}

// ReorderFields mirrors ReorderSteps one level down: each order value is
// applied independently, unknown field ids are skipped.
func (s *Store) ReorderFields(ctx context.Context, stepID int, items []ReorderItem) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			item := item
			var field model.Field
			err := updateField(ctx, tx, item.ID, FieldPatch{Order: &item.Order}, &field)
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
