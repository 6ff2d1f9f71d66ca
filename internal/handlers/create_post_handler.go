package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"ciaan_backend/dto"
	"ciaan_backend/internal/middleware"
	"ciaan_backend/internal/storage"
	"ciaan_backend/services"
)

type PostHandler struct {
	Posts *services.PostService
	Media storage.MediaStore
}

// Create godoc
// @Summary      Create a post
// @Description  Multipart form: title, discription, optional photo and video files.
// @Tags         posts
// @Accept       mpfd
// @Success      201  {object}  dto.CreatePostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /Create [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	photo, err := h.saveOptional(ctx, c, "photo")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "photo upload failed"})
	}
	video, err := h.saveOptional(ctx, c, "video")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "video upload failed"})
	}

	_, err = h.Posts.CreatePost(ctx, uid, c.FormValue("title"), c.FormValue("discription"), photo, video)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatePostResponse{
		Success: true,
		Message: "Post created successfully",
	})
}

// saveOptional stores the named form file when present; absence is not
// an error, posts can be text-only.
func (h *PostHandler) saveOptional(ctx context.Context, c *fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}
	return h.Media.Save(ctx, storage.DirUploads, fh)
}
