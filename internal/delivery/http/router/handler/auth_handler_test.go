package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/validator"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	mockUC "vault/internal/mocks/usecase"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// render runs the handler and, when it errors, pushes the error through the
// same handler the server installs so tests see the wire-level body.
func render(t *testing.T, c echo.Context, h echo.HandlerFunc) {
	t.Helper()

	if err := h(c); err != nil {
		errMW := middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
		errMW.HandleHTTPError(err, c)
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "alice@example.com", Password: "hunter2!"}).
		Return(&usecase.AuthOutput{
			Token: "issued-token",
			User:  &entity.User{ID: userID, Email: "alice@example.com"},
		}, nil)

	req := jsonRequest(http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"hunter2!"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Login)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"token":"issued-token","user":{"id":"`+userID.String()+`","email":"alice@example.com"}}`,
		rec.Body.String())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	req := jsonRequest(http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Login)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Email: "new@example.com", Password: "longenough"}).
		Return(&usecase.AuthOutput{
			Token: "fresh-token",
			User:  &entity.User{ID: userID, Email: "new@example.com"},
		}, nil)

	req := jsonRequest(http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@example.com","password":"longenough"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Register)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"token":"fresh-token","user":{"id":"`+userID.String()+`","email":"new@example.com"}}`,
		rec.Body.String())
}

func TestAuthHandler_Register_RejectsMalformedEmail(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := jsonRequest(http.MethodPost, "/api/v1/auth/register",
		`{"email":"not-an-email","password":"longenough"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Register)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed"}`, rec.Body.String())
}

func TestAuthHandler_Logout_WithValidToken(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	uc.EXPECT().VerifyAPIToken(mock.Anything, "live-token").Return(user, nil)
	uc.EXPECT().Logout(mock.Anything, user.ID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer live-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Logout)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, rec.Body.String())
}

func TestAuthHandler_Logout_StaleTokenStillSucceeds(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// A revoked or garbage token does not authenticate; logout is a no-op.
	uc.EXPECT().VerifyAPIToken(mock.Anything, "stale-token").Return(nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Logout)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, rec.Body.String())
}

func TestAuthHandler_Logout_WithoutToken(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Logout)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, rec.Body.String())
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	uc.EXPECT().DeleteAccount(mock.Anything, user.ID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/account", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.DeleteAccount)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Account deleted"}`, rec.Body.String())
}

func TestAuthHandler_DeleteAccount_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/account", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.DeleteAccount)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthHandler_RequestPasswordReset(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().RequestPasswordReset(mock.Anything, "alice@example.com").Return(nil)

	req := jsonRequest(http.MethodPost, "/api/v1/auth/password_reset",
		`{"email":"alice@example.com"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.RequestPasswordReset)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password reset instructions have been sent"}`, rec.Body.String())
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		ResetPassword(mock.Anything, usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "brand new pass"}).
		Return(nil)

	req := jsonRequest(http.MethodPut, "/api/v1/auth/password_reset",
		`{"token":"reset-token","password":"brand new pass"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.ResetPassword)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password has been reset"}`, rec.Body.String())
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		ResetPassword(mock.Anything, mock.Anything).
		Return(domainerrors.ErrResetTokenInvalid)

	req := jsonRequest(http.MethodPut, "/api/v1/auth/password_reset",
		`{"token":"expired","password":"brand new pass"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.ResetPassword)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Password reset link is invalid or has expired"}`, rec.Body.String())
}
