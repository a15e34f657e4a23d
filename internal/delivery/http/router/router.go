// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"persona/internal/delivery/http/middleware"
	"persona/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	PersonHandler  *handler.PersonHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	personHandler  *handler.PersonHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		personHandler:  params.PersonHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes: sign-up and the authentication entry point.
	public := e.Group("/persons")
	{
		public.POST("/sign-up", r.personHandler.SignUp)
		public.POST("/login", r.personHandler.Login)
	}

	// Account CRUD requires a valid bearer token.
	secured := e.Group("/persons")
	secured.Use(r.authMiddleware.Authenticate)
	{
		secured.GET("/all", r.personHandler.FindAll)
		secured.GET("/:id", r.personHandler.FindByID)
		secured.PUT("/", r.personHandler.Update)
		secured.PATCH("/", r.personHandler.ChangePassword)
		secured.DELETE("/:id", r.personHandler.Delete)
	}
}
