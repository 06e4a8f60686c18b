// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordHashFragmentLen is the number of trailing characters of the stored
// password hash embedded in a reset token. Changing the password changes the
// hash, so the fragment doubles as an implicit single-use marker.
const passwordHashFragmentLen = 10

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and logs it in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if len(input.Password) < entity.MinPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.IssueAPIToken(newUser.ID, newUser.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue api token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies an email/password pair and issues an API token derived from
// the account's current state. The failure message never reveals whether the
// email is registered.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueAPIToken(user.ID, user.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue api token during login")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// VerifyAPIToken resolves a bearer token to its account. The embedded token
// version must match the account's current one; any mismatch means the token
// was issued before the last logout and no longer authenticates.
func (srv *userService) VerifyAPIToken(ctx context.Context, token string) (*entity.User, error) {
	userID, tokenVersion, err := srv.tokenService.ParseAPIToken(token)
	if err != nil {
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load user during token verification")
	}

	if user.TokenVersion != tokenVersion {
		return nil, nil
	}

	return user, nil
}

// Logout advances the account's token version, which invalidates every API
// token issued so far. Logging out twice is harmless.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	newVersion, err := srv.userRepo.BumpTokenVersion(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to invalidate api tokens")
	}

	srv.log(ctx).Info("Logged out", slog.Any("userID", userID), slog.Int64("tokenVersion", newVersion))

	return nil
}

// RequestPasswordReset mails a reset link when the email belongs to an
// account. The caller gets the same answer either way, so the endpoint
// cannot be used to probe for registered addresses.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	normalized := entity.NormalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	token, err := srv.tokenService.IssuePasswordResetToken(user.ID, hashFragment(user.PasswordHash))
	if err != nil {
		return errors.Wrap(err, "failed to issue password reset token")
	}

	if err := srv.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		// The requester still gets a success answer; delivery problems are
		// an operational concern, not an authentication signal.
		srv.log(ctx).Error("Failed to send password reset mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Password reset mail sent", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword sets a new password for the account named by a valid reset
// token, then invalidates all outstanding API tokens. A token issued before
// an earlier password change carries a stale hash fragment and is rejected.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	userID, fragment, err := srv.tokenService.ParsePasswordResetToken(input.Token)
	if err != nil {
		return domainerrors.ErrResetTokenInvalid
	}

	if len(input.NewPassword) < entity.MinPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to load user for password reset")
		}

		if hashFragment(user.PasswordHash) != fragment {
			return domainerrors.ErrResetTokenInvalid
		}

		user.PasswordHash = hashedPassword
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store new password")
		}

		if _, err := userRepo.BumpTokenVersion(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to invalidate api tokens after password reset")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

// DeleteAccount removes the account. Owned credentials go with it via the
// foreign key cascade, and every outstanding API token dies because token
// verification can no longer resolve the account.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

// hashFragment returns the trailing characters of a stored password hash used
// to bind reset tokens to the password they were issued against.
func hashFragment(passwordHash string) string {
	if len(passwordHash) <= passwordHashFragmentLen {
		return passwordHash
	}

	return passwordHash[len(passwordHash)-passwordHashFragmentLen:]
}
