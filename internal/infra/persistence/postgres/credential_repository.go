package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	"vault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
// Every query is rooted at the owning account's records; there is no method
// that reads the credentials table without an owner filter. The password
// column is sealed/opened through the injected Encryptor so entities always
// carry plaintext inside the process.
type credentialRepository struct {
	db        *gorm.DB
	encryptor service.Encryptor
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB, encryptor service.Encryptor) repository.CredentialRepository {
	return &credentialRepository{db: db, encryptor: encryptor}
}

// ListByOwner returns all credentials of one account, newest first.
func (repo *credentialRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Credential, error) {
	var models []model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	return repo.toCredentialDomainList(models)
}

// FindByOwnerAndID retrieves one credential within the owner's records.
// A record owned by another account is indistinguishable from a missing one.
func (repo *credentialRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return repo.toCredentialDomain(&credentialM)
}

// Create persists a new credential, sealing the password before it reaches the database.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM, err := repo.fromCredentialDomain(credential)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// Update modifies a credential within the owner's records.
func (repo *credentialRepository) Update(ctx context.Context, credential *entity.Credential) error {
	encrypted, err := repo.encryptor.Encrypt(credential.Password)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt credential password")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ? AND user_id = ?", credential.ID, credential.UserID).
		Updates(map[string]any{
			"title":    credential.Title,
			"username": credential.Username,
			"password": encrypted,
			"url":      credential.URL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	// Refresh timestamps from the stored row.
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", credential.ID, credential.UserID).
		First(&credentialM).Error; err != nil {
		return errors.Wrap(err, "failed to reload credential")
	}
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// Delete removes a credential within the owner's records.
func (repo *credentialRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.CredentialModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// SearchByOwner returns the owner's credentials whose title, username or URL
// contains the query, case-insensitively.
func (repo *credentialRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Credential, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var models []model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("LOWER(title) LIKE @q OR LOWER(username) LIKE @q OR LOWER(url) LIKE @q", sql.Named("q", pattern)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search credentials")
	}

	return repo.toCredentialDomainList(models)
}

// MatchURLByOwner returns the owner's credentials whose stored URL contains
// the given key as a case-insensitive substring. The substring policy is
// deliberately loose; see the domain matcher in the usecase layer.
func (repo *credentialRepository) MatchURLByOwner(ctx context.Context, ownerID uuid.UUID, key string) ([]*entity.Credential, error) {
	pattern := "%" + strings.ToLower(key) + "%"

	var models []model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("LOWER(url) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to match credentials by url")
	}

	return repo.toCredentialDomainList(models)
}

// --- Mapper Functions ---

// toCredentialDomain converts a GORM CredentialModel to a domain entity,
// opening the sealed password.
func (repo *credentialRepository) toCredentialDomain(data *model.CredentialModel) (*entity.Credential, error) {
	if data == nil {
		return nil, nil
	}

	plaintext := ""
	if data.EncryptedPassword != "" {
		var err error
		plaintext, err = repo.encryptor.Decrypt(data.EncryptedPassword)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrypt credential password")
		}
	}

	return &entity.Credential{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Username:  data.Username,
		Password:  plaintext,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func (repo *credentialRepository) toCredentialDomainList(models []model.CredentialModel) ([]*entity.Credential, error) {
	credentials := make([]*entity.Credential, 0, len(models))
	for i := range models {
		credential, err := repo.toCredentialDomain(&models[i])
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}

	return credentials, nil
}

// fromCredentialDomain converts a domain entity to a GORM CredentialModel,
// sealing the password.
func (repo *credentialRepository) fromCredentialDomain(data *entity.Credential) (*model.CredentialModel, error) {
	if data == nil {
		return nil, nil
	}

	encrypted, err := repo.encryptor.Encrypt(data.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt credential password")
	}

	return &model.CredentialModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Title:             data.Title,
		Username:          data.Username,
		EncryptedPassword: encrypted,
		URL:               data.URL,
	}, nil
}
