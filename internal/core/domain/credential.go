package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Credential is one entry of the flat credential file, keyed by email.
// Passwords are stored either in plaintext (legacy) or as a bcrypt hash.
type Credential struct {
	Password string `json:"senha"`
	UserID   string `json:"user_id"`
}
