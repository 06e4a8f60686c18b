// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns an API token together with the authenticated account.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account and token operations.
// This is the contract that the delivery layer (API handlers and middleware) depends on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// VerifyAPIToken resolves a bearer token to its account. It returns
	// (nil, nil) for any token that does not authenticate, regardless of
	// cause; a non-nil error means the check itself could not be performed.
	VerifyAPIToken(ctx context.Context, token string) (*entity.User, error)

	// Logout invalidates every API token the account holds. It is idempotent.
	Logout(ctx context.Context, userID uuid.UUID) error

	// RequestPasswordReset issues a reset token and mails it. It reports
	// success whether or not the email belongs to an account.
	RequestPasswordReset(ctx context.Context, email string) error

	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// DeleteAccount removes the account and every credential it owns.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
