package feedback

import "time"

// RecordResponse is the outward-facing representation of a feedback record.
type RecordResponse struct {
	ID                    string    `json:"id"`
	ResearchID            string    `json:"researchId"`
	QuestionAsked         string    `json:"questionAsked"`
	Answer                *string   `json:"answer"`
	KeyPoints             []string  `json:"keyPoints"`
	ComprehensionQuestion *string   `json:"comprehensionQuestion"`
	Verified              bool      `json:"verified"`
	CreatedAt             time.Time `json:"createdAt"`
}

func toResponse(record Record) RecordResponse {
	return RecordResponse{
		ID:                    record.ID,
		ResearchID:            record.ResearchID,
		QuestionAsked:         record.QuestionAsked,
		Answer:                record.Answer,
		KeyPoints:             record.KeyPoints,
		ComprehensionQuestion: record.ComprehensionQuestion,
		Verified:              record.Verified,
		CreatedAt:             record.CreatedAt,
	}
}
