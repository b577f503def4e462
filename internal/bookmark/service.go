package bookmark

import (
	"context"
	"errors"
	"fmt"
)

// CreateInput carries the fields accepted when adding a bookmark
type CreateInput struct {
	Title       string
	Description *string
	Link        string
}

// Service handles bookmark business logic
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create stores a new bookmark owned by userID
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*Bookmark, error) {
	created, err := s.store.Create(ctx, &Bookmark{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return created, nil
}

// List returns all bookmarks owned by userID
func (s *Service) List(ctx context.Context, userID int64) ([]Bookmark, error) {
	return s.store.ListByUser(ctx, userID)
}

// Get retrieves a bookmark by id
func (s *Service) Get(ctx context.Context, id int64) (*Bookmark, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return b, nil
}

// Update applies a partial update to a bookmark
func (s *Service) Update(ctx context.Context, id int64, patch Patch) error {
	if err := s.store.Update(ctx, id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update bookmark: %w", err)
	}

	return nil
}

// Delete removes a bookmark
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return nil
}
