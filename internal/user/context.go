package user

import "context"

type contextKey string

const currentUserKey contextKey = "current_user"

// NewContext returns a context carrying the authenticated user
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// FromContext extracts the authenticated user set by the auth middleware
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(currentUserKey).(*User)
	return u, ok
}
