package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mbolis/form-weaver/model"
)

// CreateSubmission records an answer payload against the form. The payload
// is stored as-is, without structural validation against the current field
// set, and is immutable once created.
func (s *Store) CreateSubmission(ctx context.Context, formID int, payload any) (submission model.Submission, err error) {
	body, err := marshalColumn(payload)
	if err != nil {
		return
	}

	var one int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM form WHERE id = ?`, formID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return submission, ErrNotFound
	}
	if err != nil {
		return
	}

	now := time.Now()
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO submission (form_id, payload, submitted_at)
		VALUES (?, ?, ?)
		RETURNING id`,
		formID, body, now,
	).Scan(&submission.ID)
	if err != nil {
		return
	}

	submission.FormID = formID
	submission.Payload = payload
	submission.SubmittedAt = now
	return
}

// ListSubmissions returns the form's submissions, newest first.
func (s *Store) ListSubmissions(ctx context.Context, formID int) ([]model.Submission, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM form WHERE id = ?`, formID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, form_id, payload, submitted_at
		FROM submission
		WHERE form_id = ?
		ORDER BY submitted_at DESC, id DESC`,
		formID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		sub := model.Submission{}
		var payload string
		err = rows.Scan(&sub.ID, &sub.FormID, &payload, &sub.SubmittedAt)
		if err != nil {
			return nil, err
		}
		if err = unmarshalColumn(payload, &sub.Payload); err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}
