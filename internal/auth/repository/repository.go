package repository

import (
	"time"

	authdomain "journal-backend/internal/auth/domain"
)

// UserRepository defines the narrow persistence surface the credential store
// depends on: keyed by id, queryable by email and by token equality.
type UserRepository interface {
	// Create persists a new user row. Returns an error on duplicate email.
	Create(user *authdomain.User) error

	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns (nil, nil) when no user has that id.
	FindByID(id uint) (*authdomain.User, error)

	// FindBySessionToken returns (nil, nil) when no user holds that session
	// token. No validity check is performed here.
	FindBySessionToken(token string) (*authdomain.User, error)

	// RenewSession replaces the token triple of the user currently holding
	// updateToken, as one atomic write. Returns false when no row matched,
	// i.e. the update token was never issued or has already been consumed.
	RenewSession(updateToken, newSessionToken, newUpdateToken string, expiration time.Time) (*authdomain.User, error)

	// InvalidateSession tombstones the user's session in place: empty
	// tokens, expiration set to now.
	InvalidateSession(userID uint, now time.Time) error
}
