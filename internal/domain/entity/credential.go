package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is a stored login for one site, owned by exactly one user.
// Password carries the plaintext secret inside the process; it is encrypted
// at rest by the persistence layer and decrypted transparently on read.
type Credential struct {
	ID        uuid.UUID // The unique identifier for the credential.
	UserID    uuid.UUID // The owning account. A credential is never visible to any other account.
	Title     string    // Display label, e.g. "GitHub".
	Username  string    // Login name for the site.
	Password  string    // Plaintext secret (encrypted at rest).
	URL       string    // Site URL the credential belongs to; matched by the domain matcher.
	CreatedAt time.Time
	UpdatedAt time.Time
}
