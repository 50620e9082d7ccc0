// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"herbwise/internal/delivery/http/middleware"
	"herbwise/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CatalogHandler   *handler.CatalogHandler
	CartHandler      *handler.CartHandler
	OfferHandler     *handler.OfferHandler
	OrderHandler     *handler.OrderHandler
	AssistantHandler *handler.AssistantHandler
	SettingsHandler  *handler.SettingsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog and offer routes
	e.GET("/plants", r.params.CatalogHandler.ListPlants)
	e.GET("/plants/:id", r.params.CatalogHandler.GetPlant)
	e.GET("/offers", r.params.OfferHandler.ListOffers)
	e.GET("/offers/active", r.params.OfferHandler.ActiveOffers)
	e.POST("/offers/validate", r.params.OfferHandler.ValidateOffer)

	// Assistant chat is public, its own cooldown throttles abuse
	e.POST("/assistant/chat", r.params.AssistantHandler.Chat)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, r.params.AuthMiddleware.Authenticate)
		authGroup.GET("/profile", r.params.AuthHandler.Profile, r.params.AuthMiddleware.Authenticate)
	}

	// Cart routes: carts are keyed by the authenticated user
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
	}

	// Order routes require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.UpdateStatus)
	}

	// Settings routes require authentication
	settingsGroup := e.Group("/settings")
	settingsGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.params.SettingsHandler.GetSettings)
		settingsGroup.PUT("", r.params.SettingsHandler.SaveSettings)
		settingsGroup.POST("/intro-seen", r.params.SettingsHandler.MarkIntroSeen)
	}
}
