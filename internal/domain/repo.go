package domain

import "context"

// UsersRepo is the persistence collaborator: parameterized insert and
// select-by-username, nothing fancier. CreateUser surfaces a unique
// violation as *DuplicateUserError; UserByUsername returns ErrUserNotFound
// for an empty result.
type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, username string, passHash []byte) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
}
