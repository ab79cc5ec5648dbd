package entities

import "time"

// Admin is a back-office operator. PasswordHash is a bcrypt hash and never
// leaves the persistence/usecase layers.

type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is an issued admin bearer token.
//
// Storage model (DynamoDB):
//   - PK: token
//
// Lifecycle: created on login, removed on logout, rejected after ExpiresAt.

type Session struct {
	Token     string    `json:"token"`
	AdminID   string    `json:"admin_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is past its lifetime at instant now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
