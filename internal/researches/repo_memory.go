package researches

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Research
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Research)}
}

// Create stores a research record.
func (r *MemoryRepo) Create(ctx context.Context, research Research) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[research.ID] = research
	return nil
}

// GetByID returns a research by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, researchID string) (Research, error) {
	if err := ctx.Err(); err != nil {
		return Research{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	research, ok := r.data[researchID]
	if !ok {
		return Research{}, ErrNotFound
	}
	return research, nil
}

// List returns researches newest-first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Research, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	all := make([]Research, 0, len(r.data))
	for _, research := range r.data {
		all = append(all, research)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []Research{}, nil
	}
	end := len(all)
	if offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
