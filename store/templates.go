package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mbolis/form-weaver/model"
)

// SeedTemplates inserts the built-in template catalog, skipping any template
// whose name is already present. Safe to run on every startup.
func (s *Store) SeedTemplates(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, t := range templateCatalog {
			var one int
			err := tx.QueryRowContext(ctx,
				`SELECT 1 FROM template WHERE name = ?`, t.Name,
			).Scan(&one)
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}

			config, err := json.Marshal(t.Config)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO template (name, description, icon, category, config)
				VALUES (?, ?, ?, ?, ?)`,
				t.Name, t.Description, t.Icon, t.Category, string(config),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) ListTemplates(ctx context.Context) ([]model.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, icon, category, config
		FROM template
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []model.Template{}
	for rows.Next() {
		t := model.Template{}
		var config string
		err = rows.Scan(&t.ID, &t.Name, &t.Description, &t.Icon, &t.Category, &config)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(config), &t.Config); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *Store) GetTemplate(ctx context.Context, id int) (t model.Template, err error) {
	var config string
	err = s.db.QueryRowContext(ctx, `
		SELECT id, name, description, icon, category, config
		FROM template
		WHERE id = ?`,
		id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Icon, &t.Category, &config)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	if err != nil {
		return
	}
	err = json.Unmarshal([]byte(config), &t.Config)
	return
}
