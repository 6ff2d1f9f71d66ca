package routes

import (
	"github.com/gofiber/fiber/v2"

	"ciaan_backend/internal/middleware"
)

func PostRoutes(app *fiber.App, d Deps) {
	app.Post("/Create", middleware.RequireAuth(), d.Post.Create)
}
