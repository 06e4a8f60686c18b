package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vault/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	mw := newErrorMiddleware()
	c, rec := newErrorContext()

	mw.HandleHTTPError(domainerrors.ErrCredentialNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Credential not found"}`, rec.Body.String())
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	mw := newErrorMiddleware()
	c, rec := newErrorContext()

	// Handlers wrap errors for stack traces; the status must survive.
	wrapped := errors.Wrap(domainerrors.ErrEmailTaken, "registering account")
	mw.HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Email address has already been taken"}`, rec.Body.String())
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	mw := newErrorMiddleware()
	c, rec := newErrorContext()

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestHandleHTTPError_UnknownErrorStaysGeneric(t *testing.T) {
	mw := newErrorMiddleware()
	c, rec := newErrorContext()

	mw.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The cause is logged, never echoed to the client.
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestHandleHTTPError_CommittedResponseUntouched(t *testing.T) {
	mw := newErrorMiddleware()
	c, rec := newErrorContext()

	assert.NoError(t, c.JSON(http.StatusOK, map[string]string{"message": "done"}))
	mw.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"done"}`, rec.Body.String())
}
