package routes

import (
	"github.com/gofiber/fiber/v2"

	"ciaan_backend/internal/middleware"
)

func ProfileRoutes(app *fiber.App, d Deps) {
	app.Get("/Profile", middleware.RequireAuth(), d.Profile.MyPosts)
	app.Get("/username", middleware.RequireAuth(), d.Profile.Username)

	app.Get("/profile-picture", middleware.RequireAuth(), d.Profile.GetProfilePicture)
	app.Post("/profile-picture", middleware.RequireAuth(), d.Profile.UploadProfilePicture)
}
