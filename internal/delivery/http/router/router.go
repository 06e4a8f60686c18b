// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CredentialHandler *handler.CredentialHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	credentialHandler *handler.CredentialHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		credentialHandler: params.CredentialHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes. Logout takes an optional bearer token and resolves it
	// itself, so it stays outside the authentication gate.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.DELETE("/logout", r.authHandler.Logout)
		authGroup.POST("/password_reset", r.authHandler.RequestPasswordReset)
		authGroup.PUT("/password_reset", r.authHandler.ResetPassword)
		authGroup.DELETE("/account", r.authHandler.DeleteAccount, r.authMiddleware.Authenticate)
	}

	// Credential routes all require a valid API token.
	credentialGroup := api.Group("/credentials")
	credentialGroup.Use(r.authMiddleware.Authenticate)
	{
		credentialGroup.GET("", r.credentialHandler.List)
		credentialGroup.POST("", r.credentialHandler.Create)
		credentialGroup.GET("/search", r.credentialHandler.Search)
		credentialGroup.GET("/for_url", r.credentialHandler.ForURL)
		credentialGroup.GET("/:id", r.credentialHandler.Get)
		credentialGroup.PUT("/:id", r.credentialHandler.Update)
		credentialGroup.DELETE("/:id", r.credentialHandler.Delete)
	}
}
