package evaluations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new evaluation.
func (r *PGRepo) Create(ctx context.Context, ev Evaluation) error {
	requestPayload, err := json.Marshal(ev.Request)
	if err != nil {
		return err
	}
	resultPayload, err := json.Marshal(ev.Result)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO evaluations (id, user_id, finding_category, request_payload, result_payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.DB.ExecContext(ctx, query,
		ev.ID,
		ev.UserID,
		ev.Request.Finding.Category,
		requestPayload,
		resultPayload,
		ev.CreatedAt,
	)
	return err
}

// GetByID returns an evaluation by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Evaluation, error) {
	const query = `
SELECT id, user_id, request_payload, result_payload, created_at
FROM evaluations WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	return scanEvaluation(row)
}

// ListByUser returns a user's evaluations, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error) {
	const query = `
SELECT id, user_id, request_payload, result_payload, created_at
FROM evaluations WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (Evaluation, error) {
	var ev Evaluation
	var requestPayload, resultPayload []byte
	err := row.Scan(&ev.ID, &ev.UserID, &requestPayload, &resultPayload, &ev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Evaluation{}, ErrNotFound
	}
	if err != nil {
		return Evaluation{}, err
	}
	if err := json.Unmarshal(requestPayload, &ev.Request); err != nil {
		return Evaluation{}, err
	}
	if err := json.Unmarshal(resultPayload, &ev.Result); err != nil {
		return Evaluation{}, err
	}
	return ev, nil
}
