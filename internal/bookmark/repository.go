package bookmark

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/redmonkez12/bookmarks-api/internal/database"
)

// Repository handles bookmark data persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

var _ Store = (*Repository)(nil)

// Create inserts a new bookmark and returns the stored record
func (r *Repository) Create(ctx context.Context, b *Bookmark) (*Bookmark, error) {
	dbBookmark := &database.Bookmark{
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		UserID:      b.UserID,
	}

	_, err := r.db.NewInsert().
		Model(dbBookmark).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return mapDBBookmarkToModel(dbBookmark), nil
}

// ListByUser retrieves all bookmarks owned by the given user
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Bookmark, error) {
	var dbBookmarks []database.Bookmark
	err := r.db.NewSelect().
		Model(&dbBookmarks).
		Where("user_id = ?", userID).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]Bookmark, 0, len(dbBookmarks))
	for i := range dbBookmarks {
		bookmarks = append(bookmarks, *mapDBBookmarkToModel(&dbBookmarks[i]))
	}

	return bookmarks, nil
}

// GetByID retrieves a bookmark by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*Bookmark, error) {
	dbBookmark := new(database.Bookmark)
	err := r.db.NewSelect().
		Model(dbBookmark).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return mapDBBookmarkToModel(dbBookmark), nil
}

// Update applies the non-nil fields of patch to the bookmark
func (r *Repository) Update(ctx context.Context, id int64, patch Patch) error {
	q := r.db.NewUpdate().
		Model((*database.Bookmark)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", id)

	if patch.Title != nil {
		q = q.Set("title = ?", *patch.Title)
	}
	if patch.Description != nil {
		q = q.Set("description = ?", *patch.Description)
	}
	if patch.Link != nil {
		q = q.Set("link = ?", *patch.Link)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a bookmark by id
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().
		Model((*database.Bookmark)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBBookmarkToModel converts database model to domain model
func mapDBBookmarkToModel(dbb *database.Bookmark) *Bookmark {
	return &Bookmark{
		ID:          dbb.ID,
		Title:       dbb.Title,
		Description: dbb.Description,
		Link:        dbb.Link,
		UserID:      dbb.UserID,
		CreatedAt:   dbb.CreatedAt,
		UpdatedAt:   dbb.UpdatedAt,
	}
}
