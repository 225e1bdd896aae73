package researches

import "context"

// Repo defines persistence operations for researches.
type Repo interface {
	Create(ctx context.Context, research Research) error
	GetByID(ctx context.Context, researchID string) (Research, error)
	List(ctx context.Context, limit, offset int) ([]Research, error)
}
