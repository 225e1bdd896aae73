package feedback

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured. Records are stored through the same blob encoding as the
// Postgres repo so both paths share the round-trip behavior.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]storedRecord
}

type storedRecord struct {
	record    Record
	keyPoints *string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]storedRecord)}
}

// Create stores a feedback record.
func (r *MemoryRepo) Create(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := storedRecord{record: record}
	if record.KeyPoints != nil {
		blob, err := encodeKeyPoints(record.KeyPoints)
		if err != nil {
			return err
		}
		stored.keyPoints = &blob
	}
	stored.record.KeyPoints = nil

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.ID] = stored
	return nil
}

// GetByID returns a feedback record by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, recordID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	stored, ok := r.data[recordID]
	r.mu.RUnlock()
	if !ok {
		return Record{}, ErrNotFound
	}
	return restoreRecord(stored)
}

// List returns feedback records newest-first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Record, error) {
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
	all := make([]storedRecord, 0, len(r.data))
	for _, stored := range r.data {
		all = append(all, stored)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].record.CreatedAt.After(all[j].record.CreatedAt)
	})

	if offset >= len(all) {
		return []Record{}, nil
	}
	end := len(all)
	if offset+limit < end {
		end = offset + limit
	}

	out := make([]Record, 0, end-offset)
	for _, stored := range all[offset:end] {
		record, err := restoreRecord(stored)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func restoreRecord(stored storedRecord) (Record, error) {
	record := stored.record
	if stored.keyPoints != nil {
		points, err := decodeKeyPoints(*stored.keyPoints)
		if err != nil {
			return Record{}, err
		}
		record.KeyPoints = points
	}
	return record, nil
}

var _ Repo = (*MemoryRepo)(nil)
