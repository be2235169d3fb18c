package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"advisor-backend/advisor/model"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces a catalog entry keyed by ID.
func (r *PGRepo) Upsert(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry.Option)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	const query = `
INSERT INTO catalog_entries (id, category, kind, name, source, option_payload, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	category = EXCLUDED.category,
	kind = EXCLUDED.kind,
	name = EXCLUDED.name,
	source = EXCLUDED.source,
	option_payload = EXCLUDED.option_payload,
	updated_at = EXCLUDED.updated_at`
	_, err = r.DB.ExecContext(ctx, query,
		entry.ID,
		strings.ToLower(strings.TrimSpace(entry.Category)),
		string(entry.Option.Kind),
		entry.Option.Name,
		entry.Source,
		payload,
		entry.CreatedAt,
		now,
	)
	return err
}

// GetByID returns an entry by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	const query = `
SELECT id, category, source, option_payload, created_at, updated_at
FROM catalog_entries WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	return scanEntry(row)
}

// ListByCategory returns the entries filed under the category ordered by name.
func (r *PGRepo) ListByCategory(ctx context.Context, category string) ([]Entry, error) {
	const query = `
SELECT id, category, source, option_payload, created_at, updated_at
FROM catalog_entries WHERE category = $1 ORDER BY name ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// ListCategories returns the distinct categories present, sorted.
func (r *PGRepo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT category FROM catalog_entries ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		out = append(out, category)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var payload []byte
	err := row.Scan(&entry.ID, &entry.Category, &entry.Source, &payload, &entry.CreatedAt, &entry.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	var option model.CandidateOption
	if err := json.Unmarshal(payload, &option); err != nil {
		return Entry{}, err
	}
	entry.Option = option
	return entry, nil
}
