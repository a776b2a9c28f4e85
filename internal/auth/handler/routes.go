package handler

import (
	"github.com/bgarnr/hekacms/internal/auth/domain"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/auth")
	auth.Post("/login", h.Login)
	auth.Post("/register", h.Register)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", h.RequireUser(), h.Me)

	// Admin-only endpoints
	admin := app.Group("/api/admin", h.RequireUser(), h.RequireRole(domain.RoleAdmin))
	admin.Get("/ping", h.AdminPing)
}
