package impl

import (
	"context"
	"testing"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	mockRepo "vault/internal/mocks/repository"
	mockSvc "vault/internal/mocks/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "  Alice@Example.COM ",
		Password: "correct horse battery",
	}

	newID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = newID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().IssueAPIToken(newID, int64(0)).Return("api-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "api-token", output.Token)
	// The email is normalized before it reaches storage.
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "short@example.com",
		Password: "seven77",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "long enough password",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored_hash",
		TokenVersion: 3,
	}

	// Mixed case and whitespace in the submitted email still find the account.
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret password", "stored_hash").Return(true)
	fx.tokenService.EXPECT().IssueAPIToken(user.ID, int64(3)).Return("api-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    " Alice@Example.com ",
		Password: "secret password",
	})

	require.NoError(t, err)
	assert.Equal(t, "api-token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	// Unknown email and wrong password produce the same error.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "stored_hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_VerifyAPIToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", TokenVersion: 2}

	fx.tokenService.EXPECT().ParseAPIToken("token").Return(user.ID, int64(2), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.VerifyAPIToken(ctx, "token")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserService_VerifyAPIToken_Unparseable(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ParseAPIToken("garbage").
		Return(uuid.Nil, int64(0), errors.New("invalid token"))

	got, err := fx.service.VerifyAPIToken(context.Background(), "garbage")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_VerifyAPIToken_StaleVersion(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), TokenVersion: 5}

	// Token minted before a logout carries an older version.
	fx.tokenService.EXPECT().ParseAPIToken("stale").Return(user.ID, int64(4), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.VerifyAPIToken(ctx, "stale")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_VerifyAPIToken_UserGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ParseAPIToken("orphan").Return(userID, int64(0), nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.VerifyAPIToken(ctx, "orphan")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_Logout_BumpsVersion(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().BumpTokenVersion(ctx, userID).Return(int64(6), nil)

	require.NoError(t, fx.service.Logout(ctx, userID))
}

func TestUserService_Logout_UserGoneIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().BumpTokenVersion(ctx, userID).Return(int64(0), repository.ErrUserNotFound)

	assert.NoError(t, fx.service.Logout(ctx, userID))
}

func TestUserService_DeleteAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, userID))
}

func TestUserService_DeleteAccount_UserGoneIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	assert.NoError(t, fx.service.DeleteAccount(ctx, userID))
}

func TestUserService_DeleteAccount_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(errors.New("connection reset"))

	assert.Error(t, fx.service.DeleteAccount(ctx, userID))
}

func TestUserService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	// No token is issued and no mail is sent, but the caller sees success.
	assert.NoError(t, fx.service.RequestPasswordReset(ctx, "Ghost@Example.com"))
}

func TestUserService_RequestPasswordReset_SendsMail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$somelongbcrypthashvalue",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.tokenService.EXPECT().
		IssuePasswordResetToken(user.ID, hashFragment(user.PasswordHash)).
		Return("reset-token", nil)
	fx.mailer.EXPECT().SendPasswordReset(ctx, user.Email, "reset-token").Return(nil)

	require.NoError(t, fx.service.RequestPasswordReset(ctx, "alice@example.com"))
}

func TestUserService_RequestPasswordReset_MailFailureStillSucceeds(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.tokenService.EXPECT().
		IssuePasswordResetToken(user.ID, hashFragment(user.PasswordHash)).
		Return("reset-token", nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, user.Email, "reset-token").
		Return(errors.New("smtp unavailable"))

	assert.NoError(t, fx.service.RequestPasswordReset(ctx, "alice@example.com"))
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "old_hash_abcdefghij",
		TokenVersion: 1,
	}
	fragment := hashFragment(user.PasswordHash)

	fx.tokenService.EXPECT().ParsePasswordResetToken("reset-token").Return(user.ID, fragment, nil)
	fx.hasher.EXPECT().Hash("brand new password").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "new_hash", updated.PasswordHash)
				}).
				Return(nil)
			mockUserRepo.EXPECT().BumpTokenVersion(ctx, user.ID).Return(int64(2), nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	require.NoError(t, fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "brand new password",
	}))
}

func TestUserService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ParsePasswordResetToken("expired").
		Return(uuid.Nil, "", errors.New("invalid token"))

	err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:       "expired",
		NewPassword: "brand new password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestUserService_ResetPassword_StaleHashFragment(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		PasswordHash: "hash_after_first_reset",
	}

	// The token was issued against the previous password's hash.
	fx.tokenService.EXPECT().ParsePasswordResetToken("used-token").Return(user.ID, "old_tail_xx", nil)
	fx.hasher.EXPECT().Hash("brand new password").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:       "used-token",
		NewPassword: "brand new password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestUserService_ResetPassword_TooShort(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ParsePasswordResetToken("reset-token").Return(uuid.New(), "fragment", nil)

	err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "tiny",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestHashFragment(t *testing.T) {
	assert.Equal(t, "bcdefghijk", hashFragment("abcdefghijk"))
	// Short hashes are used whole.
	assert.Equal(t, "short", hashFragment("short"))
}
