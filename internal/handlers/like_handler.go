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

type LikeHandler struct {
	Engagement *services.EngagementService
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Description  Flips the caller's like on the post; a second call reverses the first.
// @Tags         engagement
// @Param        id   path  string  true  "post id"
// @Success      200  {object}  dto.LikeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /post/{id}/like [post]
func (h *LikeHandler) ToggleLike(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	likes, liked, err := h.Engagement.ToggleLike(ctx, postID, uid)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.LikeResponse{Likes: likes, Liked: liked})
}
