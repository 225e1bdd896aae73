package feedback

import "time"

// Record is a persisted question/answer exchange against one research.
// Records are created once per query and never updated.
type Record struct {
	ID                    string
	ResearchID            string
	QuestionAsked         string
	Answer                *string
	KeyPoints             []string
	ComprehensionQuestion *string
	Verified              bool
	CreatedAt             time.Time
}
