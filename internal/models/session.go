package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDB represents one login session for a user.
// Superseded sessions are flagged inactive, never deleted.
type SessionDB struct {
	SessionID uuid.UUID `json:"id" db:"session_id"`         // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Token     string    `json:"token" db:"token"`           // Opaque URL-safe bearer token
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Issuance timestamp
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Hard expiration
	Active    bool      `json:"active" db:"active"`         // False once logged out or superseded
}
