// Package response defines the JSON shapes the API returns. The browser
// extension consumes these verbatim, so field names here are part of the
// wire contract.
package response

import (
	"time"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserView is the public projection of an account. The password hash and
// token version never leave the server.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// CredentialView is the public projection of a stored credential. The
// password is included in plaintext: returning secrets to their owner is the
// whole point of the service.
type CredentialView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthBody is the body of a successful login or registration.
type AuthBody struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// CredentialsBody wraps a credential list.
type CredentialsBody struct {
	Credentials []CredentialView `json:"credentials"`
}

// CredentialBody wraps a single credential.
type CredentialBody struct {
	Credential CredentialView `json:"credential"`
}

// MessageBody carries a human-readable confirmation.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody carries a single user-facing error message.
type ErrorBody struct {
	Error string `json:"error"`
}

// NewUserView projects an account entity.
func NewUserView(user *entity.User) UserView {
	return UserView{ID: user.ID, Email: user.Email}
}

// NewCredentialView projects a credential entity.
func NewCredentialView(credential *entity.Credential) CredentialView {
	return CredentialView{
		ID:        credential.ID,
		Title:     credential.Title,
		Username:  credential.Username,
		Password:  credential.Password,
		URL:       credential.URL,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: credential.UpdatedAt,
	}
}

// NewCredentialViews projects a credential list. It always returns a non-nil
// slice so empty results serialize as [] rather than null.
func NewCredentialViews(credentials []*entity.Credential) []CredentialView {
	views := make([]CredentialView, 0, len(credentials))
	for _, credential := range credentials {
		views = append(views, NewCredentialView(credential))
	}

	return views
}

// Auth writes a login/registration response.
func Auth(c echo.Context, statusCode int, token string, user *entity.User) error {
	return c.JSON(statusCode, AuthBody{Token: token, User: NewUserView(user)})
}

// Credentials writes a credential list response.
func Credentials(c echo.Context, statusCode int, credentials []*entity.Credential) error {
	return c.JSON(statusCode, CredentialsBody{Credentials: NewCredentialViews(credentials)})
}

// Credential writes a single-credential response.
func Credential(c echo.Context, statusCode int, credential *entity.Credential) error {
	return c.JSON(statusCode, CredentialBody{Credential: NewCredentialView(credential)})
}

// Message writes a confirmation response.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}
