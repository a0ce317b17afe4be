package usecase

import (
	authdomain "journal-backend/internal/auth/domain"
	authdto "journal-backend/internal/auth/dto"
)

// AuthUsecase is the credential store: it owns the session lifecycle and is
// the only component that touches persisted user state.
type AuthUsecase interface {
	// Register creates the user and issues the initial session triple.
	Register(req *authdto.RegisterRequest) (*authdto.SessionResponse, error)

	// Login verifies credentials and returns the stored triple as-is. It
	// does not renew the session; clients wanting a fresh pair call
	// RenewSession with their update token.
	Login(req *authdto.LoginRequest) (*authdto.SessionResponse, error)

	// RenewSession consumes an update token and mints a fresh triple.
	// Update tokens are single-use.
	RenewSession(updateToken string) (*authdto.SessionResponse, error)

	// ValidateSession resolves a session token to its user, rejecting empty,
	// unknown and expired tokens.
	ValidateSession(sessionToken string) (*authdomain.User, error)

	// Logout tombstones the user's session in place.
	Logout(user *authdomain.User) error
}
