package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when a credential does not exist within
// the owner's records. A record owned by a different account reports the same
// error so existence never leaks across accounts.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines owner-scoped operations over stored credentials.
// Every method takes the owning account's ID as a mandatory parameter and
// restricts its query to that account's records; there is no global accessor.
type CredentialRepository interface {
	// ListByOwner returns all credentials of one account, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Credential, error)

	// FindByOwnerAndID retrieves one credential within the owner's records.
	FindByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Credential, error)

	// Create persists a new credential for its owner.
	Create(ctx context.Context, credential *entity.Credential) error

	// Update modifies a credential within the owner's records.
	Update(ctx context.Context, credential *entity.Credential) error

	// Delete removes a credential within the owner's records.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// SearchByOwner returns the owner's credentials whose title, username or
	// URL contains the query, case-insensitively.
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Credential, error)

	// MatchURLByOwner returns the owner's credentials whose stored URL
	// contains the given key as a case-insensitive substring.
	MatchURLByOwner(ctx context.Context, ownerID uuid.UUID, key string) ([]*entity.Credential, error)
}
