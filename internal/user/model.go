package user

import "time"

// User is the full identity record. PasswordHash never reaches clients:
// responses are built from the Public projection, not from this struct.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing view of a user. It omits the password
// hash and the updatedAt timestamp.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public projects the record to its client-facing view
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
