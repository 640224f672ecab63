package domain

import (
	"errors"
	"time"
)

// User models a registered account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name,omitempty"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	AddressID    *int64    `json:"address_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials covers every authentication failure: unknown
// username, wrong password, wrong current password on a password change.
// Callers must not be able to tell these apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRegistration covers every registration failure: mismatched
// confirmation, taken username, taken email. Collapsed so the response
// never discloses which field collided.
var ErrInvalidRegistration = errors.New("invalid registration request")

// ErrTokenInvalid covers missing, malformed, expired and badly signed
// tokens. One outcome for all of them.
var ErrTokenInvalid = errors.New("invalid token")
