package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/response"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type credentialRequest struct {
	Title    string `json:"title" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
}

// CredentialHandler holds dependencies for credential handlers. Every handler
// runs behind the authentication gate, so the current user is always present.
type CredentialHandler struct {
	uc     usecase.CredentialUsecase
	logger *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler, injected by Fx.
func NewCredentialHandler(uc usecase.CredentialUsecase, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{uc: uc, logger: logger}
}

func currentUser(c echo.Context) (*entity.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// credentialID parses the :id path parameter. An unparseable ID gets the
// same answer as a missing record.
func credentialID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrCredentialNotFound
	}

	return id, nil
}

// List returns all of the caller's credentials.
func (h *CredentialHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	credentials, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credentials(c, http.StatusOK, credentials)
}

// Get returns one of the caller's credentials.
func (h *CredentialHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := credentialID(c)
	if err != nil {
		return err
	}

	credential, err := h.uc.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credential(c, http.StatusOK, credential)
}

// Create stores a new credential for the caller.
func (h *CredentialHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input credentialRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	credential, err := h.uc.Create(c.Request().Context(), user.ID, usecase.CredentialInput{
		Title:    input.Title,
		Username: input.Username,
		Password: input.Password,
		URL:      input.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credential(c, http.StatusCreated, credential)
}

// Update rewrites one of the caller's credentials.
func (h *CredentialHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := credentialID(c)
	if err != nil {
		return err
	}

	var input credentialRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	credential, err := h.uc.Update(c.Request().Context(), user.ID, id, usecase.CredentialInput{
		Title:    input.Title,
		Username: input.Username,
		Password: input.Password,
		URL:      input.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credential(c, http.StatusOK, credential)
}

// Delete removes one of the caller's credentials.
func (h *CredentialHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := credentialID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Credential deleted")
}

// Search finds the caller's credentials by free-text query.
func (h *CredentialHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	credentials, err := h.uc.Search(c.Request().Context(), user.ID, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credentials(c, http.StatusOK, credentials)
}

// ForURL finds the caller's credentials usable on the page the extension is
// looking at.
func (h *CredentialHandler) ForURL(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	credentials, err := h.uc.MatchURL(c.Request().Context(), user.ID, c.QueryParam("url"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credentials(c, http.StatusOK, credentials)
}
