package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialInput defines the writable fields of a stored credential.
type CredentialInput struct {
	Title    string
	Username string
	Password string
	URL      string
}

// CredentialUsecase defines the interface for operations on an account's
// stored credentials. Every method takes the owner's ID; records belonging
// to other accounts behave as if they do not exist.
type CredentialUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Credential, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Credential, error)
	Create(ctx context.Context, ownerID uuid.UUID, input CredentialInput) (*entity.Credential, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input CredentialInput) (*entity.Credential, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Search returns the owner's credentials whose title, username or URL
	// contains the query, case-insensitively.
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Credential, error)

	// MatchURL returns the owner's credentials usable on the page at rawURL,
	// for the autofill flow. A blank rawURL yields an empty result.
	MatchURL(ctx context.Context, ownerID uuid.UUID, rawURL string) ([]*entity.Credential, error)
}
