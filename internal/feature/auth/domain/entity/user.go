// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered principal in the system.
// It holds the login identity and the credential hash used for authentication.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Username is the unique login identifier.
	// It must be unique across all users and is the subject of issued tokens.
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`

	// Email is the user's email address. It must be unique across all users
	// and is checked only at registration; login is by username.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored, and the hash is never serialized
	// in API responses.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// IsActive defaults to true. No endpoint currently enforces it.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}
