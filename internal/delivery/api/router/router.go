// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	StoreHandler   *handler.StoreHandler
	RatingHandler  *handler.RatingHandler
	OwnerHandler   *handler.OwnerHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	storeHandler   *handler.StoreHandler
	ratingHandler  *handler.RatingHandler
	ownerHandler   *handler.OwnerHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		storeHandler:   params.StoreHandler,
		ratingHandler:  params.RatingHandler,
		ownerHandler:   params.OwnerHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role checks beyond the admin group happen in the usecases.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public store browsing; a token adds the caller's own ratings
	storesGroup := e.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores, r.authMiddleware.OptionalAuth)
		storesGroup.GET("/:id", r.storeHandler.GetStore, r.authMiddleware.OptionalAuth)
		storesGroup.GET("/:id/qr", r.storeHandler.GetStoreQRCode)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PUT("/password", r.profileHandler.ChangePassword)
	}

	storeMgmtGroup := apiV1.Group("/stores")
	{
		storeMgmtGroup.GET("/:id/my-rating", r.storeHandler.GetMyRating)
		storeMgmtGroup.GET("/:id/manage", r.storeHandler.ManageStore)
		storeMgmtGroup.PUT("/:id", r.storeHandler.UpdateStore)
	}

	ratingsGroup := apiV1.Group("/ratings")
	{
		ratingsGroup.POST("", r.ratingHandler.CreateRating)
		ratingsGroup.GET("", r.ratingHandler.ListMyRatings)
		ratingsGroup.PATCH("/:id", r.ratingHandler.UpdateRating)
		ratingsGroup.DELETE("/:id", r.ratingHandler.DeleteRating)
	}

	ownerGroup := apiV1.Group("/owner")
	{
		ownerGroup.GET("/dashboard", r.ownerHandler.GetDashboard)
		ownerGroup.GET("/store", r.ownerHandler.GetMyStore)
		ownerGroup.GET("/ratings", r.ownerHandler.GetStoreRatings)
	}

	// Admin authorization is decided per operation by the admin usecases.
	adminGroup := apiV1.Group("/admin")
	{
		adminGroup.GET("/dashboard", r.adminHandler.GetDashboard)

		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PATCH("/users/:id/role", r.adminHandler.ChangeUserRole)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.POST("/stores", r.adminHandler.CreateStore)
		adminGroup.POST("/stores/with-owner", r.adminHandler.CreateStoreWithOwner)
		adminGroup.GET("/stores", r.adminHandler.ListStores)
		adminGroup.DELETE("/stores/:id", r.adminHandler.DeleteStore)
	}
}
