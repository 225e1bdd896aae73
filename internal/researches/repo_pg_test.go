package researches

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	title := "Attention Is All You Need"
	research := Research{
		ID:        "research-1",
		Title:     &title,
		Abstract:  "The dominant sequence transduction models...",
		FileName:  "attention.pdf",
		Summary:   "Introduces the Transformer architecture.",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO researches").
		WithArgs(
			research.ID,
			title,
			research.Abstract,
			research.FileName,
			research.Summary,
			research.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), research); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateNilTitleInsertsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	research := Research{
		ID:        "research-2",
		Abstract:  "abstract",
		FileName:  "notes.txt",
		Summary:   "summary",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO researches").
		WithArgs(
			research.ID,
			nil,
			research.Abstract,
			research.FileName,
			research.Summary,
			research.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), research); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "title", "abstract", "file_name", "summary", "created_at"}).
		AddRow("research-1", "A Title", "abstract", "paper.pdf", "summary", createdAt)

	mock.ExpectQuery("SELECT (.+) FROM researches").
		WithArgs("research-1").
		WillReturnRows(rows)

	research, err := repo.GetByID(context.Background(), "research-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if research.Title == nil || *research.Title != "A Title" {
		t.Fatalf("unexpected title: %v", research.Title)
	}
	if research.Abstract != "abstract" || research.FileName != "paper.pdf" {
		t.Fatalf("unexpected research: %+v", research)
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
	mock.ExpectQuery("SELECT (.+) FROM researches").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rows := sqlmock.NewRows([]string{"id", "title", "abstract", "file_name", "summary", "created_at"}).
		AddRow("research-1", nil, "abstract", "paper.pdf", "summary", time.Now().UTC())

	mock.ExpectQuery("SELECT (.+) FROM researches").
		WithArgs(20, 0).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 research, got %d", len(out))
	}
	if out[0].Title != nil {
		t.Fatalf("expected nil title, got %v", out[0].Title)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
