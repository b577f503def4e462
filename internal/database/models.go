package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the bun table model for the users table
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	FirstName    *string   `bun:"first_name"`
	LastName     *string   `bun:"last_name"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Bookmark is the bun table model for the bookmarks table
type Bookmark struct {
	bun.BaseModel `bun:"table:bookmarks,alias:b"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Title       string    `bun:"title,notnull"`
	Description *string   `bun:"description"`
	Link        string    `bun:"link,notnull"`
	UserID      int64     `bun:"user_id,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
