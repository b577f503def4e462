package bookmark

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("bookmark not found")

// Patch carries the mutable bookmark fields; nil means leave unchanged.
// The owner is deliberately absent.
type Patch struct {
	Title       *string
	Description *string
	Link        *string
}

// Store persists bookmarks. Listing and creation are owner-scoped; the by-id
// operations take only the bookmark id, matching the exposed API.
type Store interface {
	Create(ctx context.Context, b *Bookmark) (*Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]Bookmark, error)
	GetByID(ctx context.Context, id int64) (*Bookmark, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}
