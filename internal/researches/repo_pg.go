package researches

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new research row.
func (r *PGRepo) Create(ctx context.Context, research Research) error {
	const query = `
INSERT INTO researches (
    id,
    title,
    abstract,
    file_name,
    summary,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	var title sql.NullString
	if research.Title != nil {
		title = sql.NullString{String: *research.Title, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		research.ID,
		title,
		research.Abstract,
		research.FileName,
		research.Summary,
		research.CreatedAt,
	)
	return err
}

// GetByID fetches a research by ID.
func (r *PGRepo) GetByID(ctx context.Context, researchID string) (Research, error) {
	const query = `
SELECT id, title, abstract, file_name, summary, created_at
FROM researches
WHERE id = $1
LIMIT 1`

	var research Research
	var title sql.NullString
	err := r.DB.QueryRowContext(ctx, query, researchID).Scan(
		&research.ID,
		&title,
		&research.Abstract,
		&research.FileName,
		&research.Summary,
		&research.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Research{}, ErrNotFound
		}
		return Research{}, err
	}
	if title.Valid {
		research.Title = &title.String
	}
	return research, nil
}

// List returns researches ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Research, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, title, abstract, file_name, summary, created_at
FROM researches
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Research
	for rows.Next() {
		var research Research
		var title sql.NullString
		if err := rows.Scan(
			&research.ID,
			&title,
			&research.Abstract,
			&research.FileName,
			&research.Summary,
			&research.CreatedAt,
		); err != nil {
			return nil, err
		}
		if title.Valid {
			research.Title = &title.String
		}
		out = append(out, research)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
