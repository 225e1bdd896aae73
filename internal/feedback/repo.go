package feedback

import "context"

// Repo defines persistence operations for feedback records.
type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, recordID string) (Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
