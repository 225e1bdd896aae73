package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateEncodesKeyPoints(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	answer := "42"
	comprehension := "why?"
	record := Record{
		ID:                    "feedback-1",
		ResearchID:            "research-1",
		QuestionAsked:         "what?",
		Answer:                &answer,
		KeyPoints:             []string{"k1", "k2"},
		ComprehensionQuestion: &comprehension,
		Verified:              true,
		CreatedAt:             time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO feedback").
		WithArgs(
			record.ID,
			record.ResearchID,
			record.QuestionAsked,
			answer,
			`["k1","k2"]`,
			comprehension,
			record.Verified,
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateDegradedRecordUsesNulls(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	answer := "only an answer"
	record := Record{
		ID:            "feedback-2",
		ResearchID:    "research-1",
		QuestionAsked: "what?",
		Answer:        &answer,
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO feedback").
		WithArgs(
			record.ID,
			record.ResearchID,
			record.QuestionAsked,
			answer,
			nil,
			nil,
			false,
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesKeyPoints(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "research_id", "question_asked", "answer", "key_points", "comprehension_question", "verified", "created_at",
	}).AddRow("feedback-1", "research-1", "what?", "42", `["k1","k2"]`, "why?", true, createdAt)

	mock.ExpectQuery("SELECT (.+) FROM feedback").
		WithArgs("feedback-1").
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), "feedback-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(record.KeyPoints) != 2 || record.KeyPoints[0] != "k1" || record.KeyPoints[1] != "k2" {
		t.Fatalf("unexpected key points: %v", record.KeyPoints)
	}
	if record.Answer == nil || *record.Answer != "42" {
		t.Fatalf("unexpected answer: %v", record.Answer)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM feedback").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
