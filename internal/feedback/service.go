package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"research-backend/internal/llm"
	"research-backend/internal/researches"
	"research-backend/internal/shared/metrics"
	"research-backend/internal/shared/telemetry"
)

// Service contains business logic for asking questions against a research
// abstract and recording the structured reply.
type Service struct {
	Repo     Repo
	Research researches.Repo
	LLM      llm.Client
}

// Ask answers a question against the stored abstract of the given research
// and persists the result. No record is created on any failure.
func (s *Service) Ask(ctx context.Context, researchID, question string) (Record, error) {
	if strings.TrimSpace(researchID) == "" {
		return Record{}, fmt.Errorf("%w: research id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(question) == "" {
		return Record{}, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}

	start := time.Now()
	record, err := s.ask(ctx, researchID, question)
	if err != nil {
		metrics.QueryTotal.WithLabelValues("failed").Inc()
		return Record{}, err
	}
	metrics.QueryTotal.WithLabelValues("completed").Inc()
	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	return record, nil
}

func (s *Service) ask(ctx context.Context, researchID, question string) (Record, error) {
	research, err := s.Research.GetByID(ctx, researchID)
	if err != nil {
		return Record{}, err
	}

	raw, err := s.LLM.Ask(ctx, research.Abstract, question)
	if err != nil {
		return Record{}, err
	}

	// Raw replies are kept in the log stream for inspection; they are not
	// part of the durable data model.
	telemetry.Info("feedback.raw_reply", map[string]any{
		"research_id": researchID,
		"raw":         raw,
	})

	reply, err := ParseReply(raw)
	if err != nil {
		return Record{}, err
	}
	if !reply.Verified {
		metrics.ParseFallbackTotal.Inc()
	}

	record := Record{
		ID:                    uuid.NewString(),
		ResearchID:            researchID,
		QuestionAsked:         question,
		Answer:                optionalString(reply.Answer),
		ComprehensionQuestion: optionalString(reply.ComprehensionQuestion),
		Verified:              reply.Verified,
		CreatedAt:             time.Now().UTC(),
	}
	if len(reply.KeyPoints) > 0 {
		record.KeyPoints = reply.KeyPoints
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Get returns a feedback record by ID.
func (s *Service) Get(ctx context.Context, recordID string) (Record, error) {
	if recordID == "" {
		return Record{}, fmt.Errorf("%w: feedback id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, recordID)
}

// List returns feedback records ordered newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	return s.Repo.List(ctx, limit, offset)
}

func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
