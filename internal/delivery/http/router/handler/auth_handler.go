// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required"`
}

type passwordResetUpdateRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for account and token handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Login exchanges an email/password pair for an API token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, output.Token, output.User)
}

// Register creates an account and logs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusCreated, output.Token, output.User)
}

// Logout invalidates the caller's API tokens. The bearer token is optional:
// logging out with a stale or absent token still answers with success.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := middleware.BearerToken(c); ok {
		user, err := h.uc.VerifyAPIToken(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		if user != nil {
			if err := h.uc.Logout(c.Request().Context(), user.ID); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	return response.Message(c, http.StatusOK, "Logged out")
}

// DeleteAccount removes the authenticated account together with all of its
// credentials. It runs behind the authentication gate.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Account deleted")
}

// RequestPasswordReset mails a reset link. The answer is the same whether or
// not the email belongs to an account.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input passwordResetRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password reset instructions have been sent")
}

// ResetPassword sets a new password using a reset token from the mail link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input passwordResetUpdateRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       input.Token,
		NewPassword: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password has been reset")
}
