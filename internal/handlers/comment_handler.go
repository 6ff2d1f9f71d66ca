package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ciaan_backend/dto"
	"ciaan_backend/internal/middleware"
	"ciaan_backend/services"
)

type CommentHandler struct {
	Engagement *services.EngagementService
	Feed       *services.FeedService
}

// Create godoc
// @Summary      Comment on a post
// @Tags         engagement
// @Param        id    path  string                false  "post id"
// @Param        body  body  dto.CreateCommentReq  true   "comment text"
// @Success      200  {object}  dto.FeedPost
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /post/{id}/comment [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.Engagement.AddComment(ctx, postID, uid, body.Text); err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	// Existing clients re-render the whole post, so respond with it
	// enriched rather than with the bare comment.
	post, err := h.Feed.GetPost(ctx, postID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(post)
}
