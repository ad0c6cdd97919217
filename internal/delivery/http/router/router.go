// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sayma/internal/delivery/http/middleware"
	"sayma/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	MaidHandler    *handler.MaidHandler
	ReviewHandler  *handler.ReviewHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	maidHandler    *handler.MaidHandler
	reviewHandler  *handler.ReviewHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		maidHandler:    params.MaidHandler,
		reviewHandler:  params.ReviewHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Admin authentication. Mounted before the customer auth group so the
	// more specific prefix wins.
	adminAuth := api.Group("/auth/admin")
	{
		adminAuth.POST("/login", r.adminHandler.RequestOTP)
		adminAuth.POST("/verify", r.adminHandler.VerifyOTP)
		adminAuth.POST("/logout", r.adminHandler.Logout)
		adminAuth.GET("/me", r.adminHandler.Me, r.authMiddleware.RequireAdmin)
	}

	// Customer authentication
	auth := api.Group("/auth")
	{
		auth.POST("/register-and-login", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/google", r.authHandler.GoogleSignIn)
		auth.POST("/check-email", r.authHandler.CheckEmail)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/me", r.authHandler.Me, r.authMiddleware.RequireCustomer)
	}

	// Customer routes that require a session
	user := api.Group("/user")
	user.Use(r.authMiddleware.RequireCustomer)
	{
		user.POST("/update-profile", r.authHandler.UpdateProfile)
	}

	// Housemaid catalog. Reads are public; hidden profiles appear only
	// for verified admins. Writes are admin gated per route.
	maids := api.Group("/maids")
	{
		maids.GET("", r.maidHandler.List, r.authMiddleware.OptionalAdmin)
		maids.GET("/:id", r.maidHandler.Get)
		maids.POST("", r.maidHandler.Create, r.authMiddleware.RequireAdmin)
		maids.PUT("/:id", r.maidHandler.Update, r.authMiddleware.RequireAdmin)
		maids.DELETE("/:id", r.maidHandler.Delete, r.authMiddleware.RequireAdmin)
		maids.PATCH("/:id/toggle-visibility", r.maidHandler.ToggleVisibility, r.authMiddleware.RequireAdmin)
		maids.POST("/:id/images", r.maidHandler.UploadPhotos, r.authMiddleware.RequireAdmin)
	}

	// Reviews and contact form
	api.GET("/reviews", r.reviewHandler.List)
	api.POST("/reviews", r.reviewHandler.Create, r.authMiddleware.RequireCustomer)
	api.POST("/contact", r.contactHandler.Submit)

	// Back office, gated by the signed admin cookie
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.RequireAdmin)
	{
		admin.GET("/authorized-emails", r.adminHandler.ListAuthorizedEmails)
		admin.POST("/authorized-emails", r.adminHandler.AddAuthorizedEmail)
		admin.DELETE("/authorized-emails", r.adminHandler.RemoveAuthorizedEmail)

		admin.GET("/customers", r.adminHandler.ListCustomers)

		admin.PUT("/reviews/toggle", r.reviewHandler.ToggleVisibility)

		admin.GET("/contacts", r.contactHandler.List)
		admin.PATCH("/contacts", r.contactHandler.UpdateStatus)
		admin.DELETE("/contacts", r.contactHandler.Delete)
	}
}
