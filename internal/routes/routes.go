package routes

import (
	"github.com/gofiber/fiber/v2"

	"ciaan_backend/internal/handlers"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	Post    *handlers.PostHandler
	Feed    *handlers.FeedHandler
	Like    *handlers.LikeHandler
	Comment *handlers.CommentHandler
	Profile *handlers.ProfileHandler
}

// Register wires every route. Paths are the ones the existing front end
// calls, including their original casing.
func Register(app *fiber.App, d Deps) {
	app.Post("/registration", d.Auth.Register)
	app.Post("/login", d.Auth.Login)

	app.Get("/", d.Feed.List)

	PostRoutes(app, d)
	EngagementRoutes(app, d)
	ProfileRoutes(app, d)
}
