package impl

import (
	"context"
	"log/slog"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	credentialRepo repository.CredentialRepository
	logger         *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Logger         *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		credentialRepo: params.CredentialRepo,
		logger:         params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all of the owner's credentials, newest first.
func (srv *credentialService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Credential, error) {
	credentials, err := srv.credentialRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	return credentials, nil
}

// Get returns one of the owner's credentials by ID.
func (srv *credentialService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Credential, error) {
	credential, err := srv.credentialRepo.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to get credential")
	}

	return credential, nil
}

// Create stores a new credential for the owner.
func (srv *credentialService) Create(ctx context.Context, ownerID uuid.UUID, input usecase.CredentialInput) (*entity.Credential, error) {
	credential := &entity.Credential{
		UserID:   ownerID,
		Title:    input.Title,
		Username: input.Username,
		Password: input.Password,
		URL:      input.URL,
	}

	if err := srv.credentialRepo.Create(ctx, credential); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Credential created", slog.Any("userID", ownerID), slog.Any("credentialID", credential.ID))

	return credential, nil
}

// Update rewrites all writable fields of one of the owner's credentials.
func (srv *credentialService) Update(ctx context.Context, ownerID, id uuid.UUID, input usecase.CredentialInput) (*entity.Credential, error) {
	credential := &entity.Credential{
		ID:       id,
		UserID:   ownerID,
		Title:    input.Title,
		Username: input.Username,
		Password: input.Password,
		URL:      input.URL,
	}

	if err := srv.credentialRepo.Update(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrCredentialNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Credential updated", slog.Any("userID", ownerID), slog.Any("credentialID", id))

	return credential, nil
}

// Delete removes one of the owner's credentials.
func (srv *credentialService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.credentialRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrCredentialNotFound
		}

		return errors.Wrap(err, "failed to delete credential")
	}

	srv.log(ctx).Info("Credential deleted", slog.Any("userID", ownerID), slog.Any("credentialID", id))

	return nil
}

// Search finds the owner's credentials by free-text query over title,
// username and URL. A blank query matches everything.
func (srv *credentialService) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Credential, error) {
	credentials, err := srv.credentialRepo.SearchByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search credentials")
	}

	return credentials, nil
}

// MatchURL finds the owner's credentials usable on the given page. The URL is
// reduced to its hostname (or kept verbatim when it does not parse) and
// matched as a case-insensitive substring of each stored URL.
func (srv *credentialService) MatchURL(ctx context.Context, ownerID uuid.UUID, rawURL string) ([]*entity.Credential, error) {
	key := matchKey(rawURL)
	if key == "" {
		return []*entity.Credential{}, nil
	}

	credentials, err := srv.credentialRepo.MatchURLByOwner(ctx, ownerID, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to match credentials by url")
	}

	return credentials, nil
}
