package bookmark

import "time"

// Bookmark is a user-owned link record. The owner is set from the
// authenticated caller at creation and is not mutable through updates.
type Bookmark struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Link        string    `json:"link"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
