package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext
// never leaves the signup/login path.
type User struct {
	ID           string
	Username     string
	Email        string // stored lowercased
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
