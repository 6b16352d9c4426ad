package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the public catalog routes plus the review route
// behind requireAuth and the management routes behind requireAdmin.
func RegisterRoutes(app *fiber.App, h *RoomHandler, requireAuth, requireAdmin fiber.Handler) {
	app.Get("/api/v1/rooms", h.List)
	app.Get("/api/v1/rooms/:id", h.Get)
	app.Post("/api/v1/rooms/:id/reviews", requireAuth, h.AddReview)

	admin := app.Group("/api/v1/admin", requireAdmin)
	admin.Post("/rooms", h.Create)
	admin.Put("/rooms/:id", h.Update)
	admin.Delete("/rooms/:id", h.Delete)
}
