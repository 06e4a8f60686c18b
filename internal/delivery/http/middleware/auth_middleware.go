package middleware

import (
	"net/http"
	"strings"

	"vault/internal/delivery/http/response"
	"vault/internal/domain/entity"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyCurrentUser is the echo.Context key holding the authenticated account.
const keyCurrentUser = "currentUser"

// AuthMiddleware resolves bearer tokens to accounts and gates protected routes.
type AuthMiddleware struct {
	userUsecase usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUsecase usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUsecase: userUsecase}
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
// It returns false for a missing header or any other scheme.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}

// Authenticate rejects the request with a uniform 401 unless the bearer token
// resolves to an account. The body never says why authentication failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return response.Error(c, http.StatusUnauthorized, "Unauthorized")
		}

		user, err := m.userUsecase.VerifyAPIToken(c.Request().Context(), token)
		if err != nil {
			return err
		}
		if user == nil {
			return response.Error(c, http.StatusUnauthorized, "Unauthorized")
		}

		c.Set(keyCurrentUser, user)

		return next(c)
	}
}

// CurrentUser returns the account set by Authenticate, or nil when the
// request was not authenticated.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(keyCurrentUser).(*entity.User); ok {
		return user
	}

	return nil
}
