package domain

import (
	"strings"
	"time"
)

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every store and lookup goes through this, so uniqueness in the users
// collection is case-insensitive by construction.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
