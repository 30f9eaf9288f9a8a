package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mbolis/form-weaver/model"
)

// CreateCompleteForm persists a form plus its whole step/field tree in one
// transaction. Missing title or step list rejects the request before
// anything is persisted; per-field defaults are applied (unknown types
// collapse to text, blank labels to a generic placeholder) and orders are
// assigned by position.
func (s *Store) CreateCompleteForm(ctx context.Context, ownerID string, input CompleteFormInput) (form model.FormWithSteps, err error) {
	if strings.TrimSpace(input.Title) == "" || input.Steps == nil {
		return form, ErrInvalidInput
	}

	now := time.Now()
	form.OwnerID = ownerID
	form.Title = input.Title
	form.Description = input.Description
	form.CreatedAt = now
	form.UpdatedAt = now
	form.Steps = []model.Step{}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO form (owner_id, title, description, published, created_at, updated_at)
			VALUES (?, ?, ?, 0, ?, ?)
			RETURNING id`,
			ownerID, form.Title, form.Description, now, now,
		).Scan(&form.ID)
		if err != nil {
			return err
		}

		for stepIndex, stepInput := range input.Steps {
			step := model.Step{
				FormID:      form.ID,
				Title:       stepInput.Title,
				Description: stepInput.Description,
				Order:       stepIndex,
				Fields:      []model.Field{},
			}
			if strings.TrimSpace(step.Title) == "" {
				step.Title = "Untitled Step"
			}

			err = tx.QueryRowContext(ctx, `
				INSERT INTO form_step (form_id, title, description, order_index)
				VALUES (?, ?, ?, ?)
				RETURNING id`,
				form.ID, step.Title, step.Description, step.Order,
			).Scan(&step.ID)
			if err != nil {
				return err
			}

			for fieldIndex, fieldInput := range stepInput.Fields {
				field := model.Field{
					StepID:      step.ID,
					Type:        strings.ToLower(strings.TrimSpace(fieldInput.Type)),
					Label:       fieldInput.Label,
					Placeholder: fieldInput.Placeholder,
					Required:    fieldInput.Required,
					Order:       fieldIndex,
					Options:     fieldInput.Options,
				}
				if !model.ValidFieldType(field.Type) {
					field.Type = model.DefaultFieldType
				}
				if strings.TrimSpace(field.Label) == "" {
					field.Label = "Field"
				}

				options, err := marshalColumn(field.Options)
				if err != nil {
					return err
				}
				err = tx.QueryRowContext(ctx, `
					INSERT INTO form_field (step_id, type, label, placeholder, default_value, required, order_index, options, validation_rules)
					VALUES (?, ?, ?, ?, '', ?, ?, ?, '')
					RETURNING id`,
					step.ID, field.Type, field.Label, field.Placeholder, field.Required, field.Order, options,
				).Scan(&field.ID)
				if err != nil {
					return err
				}

				step.Fields = append(step.Fields, field)
			}

			form.Steps = append(form.Steps, step)
		}
		return nil
	})
	if err != nil {
		return model.FormWithSteps{}, err
	}
	return
}
