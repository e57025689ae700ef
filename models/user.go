package models

import "time"

// AuthProvider identifies how a user account was created and how it
// authenticates. Password operations are only valid for ProviderEmail
// accounts.
type AuthProvider string

const (
	// ProviderEmail marks accounts registered with an email and password.
	ProviderEmail AuthProvider = "email"

	// ProviderGoogle marks accounts created through the Google identity
	// flow. Such accounts have no local password.
	ProviderGoogle AuthProvider = "google"
)

// User represents an account entity used for authentication and for
// attributing reviews. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"id"`

	// Email is the unique email address used during authentication.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Empty for ProviderGoogle accounts. Never serialized.
	PasswordHash string `json:"-"`

	// Provider records which identity flow created the account.
	Provider AuthProvider `json:"provider"`

	// PhotoURL is an optional avatar URL.
	PhotoURL string `json:"photo_url,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// ProfileUpdate carries the mutable profile fields.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}
