package routes

import (
	"github.com/gofiber/fiber/v2"

	"ciaan_backend/internal/middleware"
)

func EngagementRoutes(app *fiber.App, d Deps) {
	post := app.Group("/post", middleware.RequireAuth())

	post.Post("/:id/like", d.Like.ToggleLike)
	post.Post("/:id/comment", d.Comment.Create)
}
