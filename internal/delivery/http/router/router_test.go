package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/router/handler"
	"vault/internal/delivery/http/validator"
	"vault/internal/domain/entity"
	mockUC "vault/internal/mocks/usecase"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the router, handlers and middleware the same way the
// HTTP delivery does, over mocked usecases.
func newTestServer(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase, *mockUC.MockCredentialUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)
	credentialUC := mockUC.NewMockCredentialUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(userUC, logger),
		CredentialHandler: handler.NewCredentialHandler(credentialUC, logger),
		AuthMiddleware:    middleware.NewAuthMiddleware(userUC),
	}).RegisterRoutes(e)

	return e, userUC, credentialUC
}

func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_CredentialRoutesRequireAuth(t *testing.T) {
	e, _, _ := newTestServer(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/v1/auth/account"},
		{http.MethodGet, "/api/v1/credentials"},
		{http.MethodPost, "/api/v1/credentials"},
		{http.MethodGet, "/api/v1/credentials/search?q=x"},
		{http.MethodGet, "/api/v1/credentials/for_url?url=x"},
		{http.MethodGet, "/api/v1/credentials/" + uuid.NewString()},
		{http.MethodPut, "/api/v1/credentials/" + uuid.NewString()},
		{http.MethodDelete, "/api/v1/credentials/" + uuid.NewString()},
	} {
		rec := do(e, target.method, target.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", target.method, target.path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	}
}

func TestRouter_DeleteAccount(t *testing.T) {
	e, userUC, _ := newTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	const token = "live-token"

	userUC.EXPECT().VerifyAPIToken(mock.Anything, token).Return(user, nil).Once()
	userUC.EXPECT().DeleteAccount(mock.Anything, user.ID).Return(nil).Once()

	rec := do(e, http.MethodDelete, "/api/v1/auth/account", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Account deleted"}`, rec.Body.String())
}

func TestRouter_UnknownRouteIsFlatError(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

// TestRouter_ExtensionSession walks the extension's happy path end to end:
// log in, store a credential, list, match by page URL, log out, observe the
// token die.
func TestRouter_ExtensionSession(t *testing.T) {
	e, userUC, credentialUC := newTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	const token = "session-token"

	userUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "alice@example.com", Password: "hunter2!!"}).
		Return(&usecase.AuthOutput{Token: token, User: user}, nil).
		Once()

	// The token authenticates until logout, then never again.
	userUC.EXPECT().VerifyAPIToken(mock.Anything, token).Return(user, nil).Times(4)
	userUC.EXPECT().Logout(mock.Anything, user.ID).Return(nil).Once()
	userUC.EXPECT().VerifyAPIToken(mock.Anything, token).Return(nil, nil).Once()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created := &entity.Credential{
		ID:        uuid.New(),
		UserID:    user.ID,
		Title:     "GitHub",
		Username:  "alice",
		Password:  "hunter2",
		URL:       "https://github.com/login",
		CreatedAt: now,
		UpdatedAt: now,
	}
	credentialUC.EXPECT().
		Create(mock.Anything, user.ID, usecase.CredentialInput{
			Title:    "GitHub",
			Username: "alice",
			Password: "hunter2",
			URL:      "https://github.com/login",
		}).
		Return(created, nil).
		Once()
	credentialUC.EXPECT().List(mock.Anything, user.ID).
		Return([]*entity.Credential{created}, nil).Once()
	credentialUC.EXPECT().MatchURL(mock.Anything, user.ID, "https://github.com/settings").
		Return([]*entity.Credential{created}, nil).Once()

	// Log in.
	rec := do(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"hunter2!!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"`+token+`"`)

	// Store a credential.
	rec = do(e, http.MethodPost, "/api/v1/credentials",
		`{"title":"GitHub","username":"alice","password":"hunter2","url":"https://github.com/login"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	// List it back.
	rec = do(e, http.MethodGet, "/api/v1/credentials", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"GitHub"`)

	// Autofill lookup from another page on the same host.
	rec = do(e, http.MethodGet,
		"/api/v1/credentials/for_url?url=https%3A%2F%2Fgithub.com%2Fsettings", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"password":"hunter2"`)

	// Log out.
	rec = do(e, http.MethodDelete, "/api/v1/auth/logout", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, rec.Body.String())

	// The token is dead now.
	rec = do(e, http.MethodGet, "/api/v1/credentials", "", token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
