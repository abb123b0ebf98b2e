package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/icislabs/contract-workbench/internal/domain/drafts"
)

// DraftRepository is an in-memory drafts.Repository for development mode and
// tests. Id assignment is serialized by the mutex.
type DraftRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]drafts.Draft
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{nextID: 1, byID: make(map[int64]drafts.Draft)}
}

func (r *DraftRepository) Create(ctx context.Context, d *drafts.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = r.nextID
	r.nextID++
	r.byID[d.ID] = *d
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, id int64) (*drafts.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, drafts.ErrNotFound
	}
	return &d, nil
}

func (r *DraftRepository) List(ctx context.Context, limit int) ([]*drafts.Draft, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*drafts.Draft, 0, len(r.byID))
	for id := range r.byID {
		d := r.byID[id]
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
