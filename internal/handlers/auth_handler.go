package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"ciaan_backend/dto"
	"ciaan_backend/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Param        body  body  dto.RegisterRequest  true  "registration"
// @Success      201  {object}  dto.AuthResponse
// @Router       /registration [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	token, err := h.Auth.Register(c.Context(), body.Username, body.Email, body.Password, body.Gender)
	if err != nil {
		// Duplicates keep the existing contract: 200 with a success
		// string naming the conflicting field.
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return c.JSON(dto.AuthResponse{Success: "user", Message: "Username already registered"})
		case errors.Is(err, services.ErrEmailTaken):
			return c.JSON(dto.AuthResponse{Success: "email", Message: "Email already registered"})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		log.Println("registration:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Registration failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		Token:   token,
	})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Param        body  body  dto.LoginRequest  true  "credentials"
// @Success      200  {object}  dto.AuthResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	token, err := h.Auth.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadLogin) {
			return c.JSON(dto.AuthResponse{Success: false, Message: "Invalid username or password"})
		}
		log.Println("login:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Login failed due to server error"})
	}

	return c.JSON(dto.AuthResponse{Success: true, Message: "Login successful", Token: token})
}
