package useravatar

import "context"

// Identity provider user id (uuid in supabase projects).
type UserId string

type User struct {
	Id    UserId
	Email string
}

// UserResolver resolves the caller it was created for.
type UserResolver interface {
	// Returns ErrNotAuthenticated when no user can be resolved.
	CurrentUser(ctx context.Context) (User, error)
}
