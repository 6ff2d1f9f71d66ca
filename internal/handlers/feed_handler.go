package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ciaan_backend/dto"
	"ciaan_backend/services"
)

type FeedHandler struct {
	Feed *services.FeedService
}

// List godoc
// @Summary      Public feed
// @Description  All posts, or only those whose title contains the search term (case-insensitive).
// @Tags         feed
// @Param        search  query  string  false  "title substring"
// @Success      200  {array}  dto.FeedPost
// @Router       / [get]
func (h *FeedHandler) List(c *fiber.Ctx) error {
	posts, err := h.Feed.ListFeed(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Message: "Error retrieving posts"})
	}
	return c.JSON(posts)
}
