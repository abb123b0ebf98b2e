package drafts

import (
	"context"
	"errors"
)

// ErrNotFound indicates no draft exists with the requested id.
var ErrNotFound = errors.New("draft not found")

// Repository port (interface for persistence)
type Repository interface {
	// Create stores the draft and fills in ID and CreatedAt.
	Create(ctx context.Context, d *Draft) error
	Get(ctx context.Context, id int64) (*Draft, error)
	// List returns drafts newest-first, at most limit entries.
	List(ctx context.Context, limit int) ([]*Draft, error)
}
