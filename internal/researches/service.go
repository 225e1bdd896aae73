package researches

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"research-backend/internal/extract"
	"research-backend/internal/llm"
	"research-backend/internal/shared/metrics"
	"research-backend/internal/shared/storage/object"
	"research-backend/internal/shared/telemetry"
)

// Service contains business logic for ingesting and reading researches.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	LLM   llm.Client
}

// Ingest saves the upload, extracts a title/abstract, generates a summary and
// persists the research. Any failure aborts the ingest with no row created.
func (s *Service) Ingest(ctx context.Context, fileName string, r io.Reader) (Research, error) {
	if fileName == "" {
		return Research{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if !extract.AllowedExtension(fileName) {
		return Research{}, fmt.Errorf("%w: %s", extract.ErrUnsupportedFormat, fileName)
	}

	start := time.Now()
	research, err := s.ingest(ctx, fileName, r)
	if err != nil {
		metrics.IngestTotal.WithLabelValues("failed").Inc()
		return Research{}, err
	}
	metrics.IngestTotal.WithLabelValues("completed").Inc()
	metrics.IngestDuration.Observe(time.Since(start).Seconds())
	return research, nil
}

func (s *Service) ingest(ctx context.Context, fileName string, r io.Reader) (Research, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Research{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, size, err := s.Store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return Research{}, fmt.Errorf("save upload: %w", err)
	}

	extracted, err := extract.FromBytes(ctx, data, fileName)
	if err != nil {
		return Research{}, err
	}

	summary, err := s.LLM.Summarize(ctx, summaryInput(extracted))
	if err != nil {
		return Research{}, err
	}

	research := Research{
		ID:        uuid.NewString(),
		Title:     extracted.Title,
		Abstract:  extracted.Body,
		FileName:  fileName,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, research); err != nil {
		return Research{}, err
	}

	telemetry.Info("research.ingested", map[string]any{
		"research_id": research.ID,
		"file_name":   fileName,
		"storage_key": storageKey,
		"size_bytes":  size,
		"has_title":   research.Title != nil,
	})

	return research, nil
}

// Get returns a research by ID.
func (s *Service) Get(ctx context.Context, researchID string) (Research, error) {
	if researchID == "" {
		return Research{}, fmt.Errorf("%w: research id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, researchID)
}

// List returns researches ordered newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Research, error) {
	return s.Repo.List(ctx, limit, offset)
}

// summaryInput is the full extracted text sent to the summarizer, title included.
func summaryInput(res extract.Result) string {
	if res.Title == nil {
		return res.Body
	}
	if res.Body == "" {
		return *res.Title
	}
	return *res.Title + "\n" + res.Body
}
