// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that owns credentials. The email address is the login
// identifier and is always stored in normalized form.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // Normalized (trimmed, lowercased) email address; unique.
	PasswordHash string    // bcrypt hash of the account password. Never exposed.
	TokenVersion int64     // State signature: bumping it invalidates every issued API token.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// NormalizeEmail applies the canonical email form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MinPasswordLength is the minimum accepted account password length.
const MinPasswordLength = 8
