package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/helper/utils"
	"github.com/policyvault/policy-service/internal/repository"
	"github.com/policyvault/policy-service/internal/services"
)

type AuthHandler struct {
	svc services.UserService
}

func NewAuthHandler(svc services.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// SetupRoutes registers the public auth endpoints; these must be wired before
// the auth middleware.
func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/forgot-password", h.ForgotPassword)
}

// SetupProtectedRoutes registers routes that need an owner context.
func (h *AuthHandler) SetupProtectedRoutes(app *fiber.App) {
	app.Get("/user/profile", h.Profile)
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.Register(requestBody)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, services.ErrInvalidInput):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
		default:
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during registration")
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    dto.UserResponse{Name: user.Name, Email: user.Email},
	})
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, token, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during login")
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    dto.UserResponse{Name: user.Name, Email: user.Email},
	})
}

func (h *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid email id")
	}

	if err := h.svc.ForgotPassword(requestBody.Email); err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during password reset")
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Password reset email sent if user exists")
}

func (h *AuthHandler) Profile(ctx *fiber.Ctx) error {
	user, err := h.svc.GetProfile(ownerID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "User not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch user profile")
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
