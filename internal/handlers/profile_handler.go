package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ciaan_backend/dto"
	"ciaan_backend/internal/middleware"
	"ciaan_backend/internal/repository"
	"ciaan_backend/internal/storage"
	"ciaan_backend/services"
)

// ProfileHandler serves the logged-in user's own data: posts, username,
// profile picture.
type ProfileHandler struct {
	Users repository.UserRepository
	Posts *services.PostService
	Media storage.MediaStore
}

// MyPosts handles GET /Profile.
func (h *ProfileHandler) MyPosts(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	posts, err := h.Posts.PostsByAuthor(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error retrieving posts"})
	}
	return c.JSON(posts)
}

// Username handles GET /username.
func (h *ProfileHandler) Username(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Server error"})
	}
	return c.JSON(dto.UsernameResponse{Username: user.Username})
}

// GetProfilePicture handles GET /profile-picture.
func (h *ProfileHandler) GetProfilePicture(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil || user.ProfilePicture == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Profile picture not found"})
	}
	return c.JSON(dto.ProfilePictureResponse{ProfilePicture: user.ProfilePicture})
}

// UploadProfilePicture handles POST /profile-picture (multipart field
// "profilePicture").
func (h *ProfileHandler) UploadProfilePicture(c *fiber.Ctx) error {
	uid, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	fh, err := c.FormFile("profilePicture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "profilePicture file required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ref, err := h.Media.Save(ctx, storage.DirProfilePictures, fh)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "An error occurred while uploading the profile picture"})
	}

	if err := h.Users.SetProfilePicture(ctx, uid, ref); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "An error occurred while uploading the profile picture"})
	}

	return c.JSON(dto.ProfilePictureResponse{
		Success:        true,
		Message:        "Profile picture updated successfully",
		ProfilePicture: ref,
	})
}
