package feedback

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new feedback record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO feedback (
    id,
    research_id,
    question_asked,
    answer,
    key_points,
    comprehension_question,
    verified,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var answer, comprehension sql.NullString
	if record.Answer != nil {
		answer = sql.NullString{String: *record.Answer, Valid: true}
	}
	if record.ComprehensionQuestion != nil {
		comprehension = sql.NullString{String: *record.ComprehensionQuestion, Valid: true}
	}

	var keyPoints sql.NullString
	if record.KeyPoints != nil {
		blob, err := encodeKeyPoints(record.KeyPoints)
		if err != nil {
			return err
		}
		keyPoints = sql.NullString{String: blob, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		record.ID,
		record.ResearchID,
		record.QuestionAsked,
		answer,
		keyPoints,
		comprehension,
		record.Verified,
		record.CreatedAt,
	)
	return err
}

// GetByID fetches a feedback record by ID.
func (r *PGRepo) GetByID(ctx context.Context, recordID string) (Record, error) {
	const query = `
SELECT id, research_id, question_asked, answer, key_points, comprehension_question, verified, created_at
FROM feedback
WHERE id = $1
LIMIT 1`

	record, err := scanRecord(r.DB.QueryRowContext(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return record, nil
}

// List returns feedback records ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Record, error) {
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
SELECT id, research_id, question_asked, answer, key_points, comprehension_question, verified, created_at
FROM feedback
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var answer, keyPoints, comprehension sql.NullString
	if err := row.Scan(
		&record.ID,
		&record.ResearchID,
		&record.QuestionAsked,
		&answer,
		&keyPoints,
		&comprehension,
		&record.Verified,
		&record.CreatedAt,
	); err != nil {
		return Record{}, err
	}
	if answer.Valid {
		record.Answer = &answer.String
	}
	if comprehension.Valid {
		record.ComprehensionQuestion = &comprehension.String
	}
	if keyPoints.Valid {
		points, err := decodeKeyPoints(keyPoints.String)
		if err != nil {
			return Record{}, err
		}
		record.KeyPoints = points
	}
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
