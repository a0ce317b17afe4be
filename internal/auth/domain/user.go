package domain

import "time"

// User carries both the account identity and the current session state.
// Tokens are opaque random strings; an empty token means no active session.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordDigest    string    `json:"-" gorm:"not null"`
	// Token uniqueness only applies while a session is assigned; tombstoned
	// rows all hold the empty sentinel, so the indexes are partial.
	SessionToken      string    `json:"session_token" gorm:"index:idx_users_session_token,unique,where:session_token <> ''"`
	SessionExpiration time.Time `json:"session_expiration"`
	UpdateToken       string    `json:"update_token" gorm:"index:idx_users_update_token,unique,where:update_token <> ''"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SessionActive reports whether the stored session token is still usable.
func (u *User) SessionActive(now time.Time) bool {
	return u.SessionToken != "" && now.Before(u.SessionExpiration)
}
