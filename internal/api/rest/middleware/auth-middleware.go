package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/policyvault/policy-service/internal/helper"
)

const (
	LocalUserID = "userID"
	LocalEmail  = "userEmail"
)

// AuthMiddleware resolves the owner context from the Authorization header.
// A missing credential is 401; a credential we cannot verify is 403.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get("Authorization"))
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access denied. Token required.",
			})
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		ctx.Locals(LocalUserID, claims.UserID)
		ctx.Locals(LocalEmail, claims.Email)
		return ctx.Next()
	}
}

// OwnerID returns the authenticated account ID placed by AuthMiddleware.
func OwnerID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(LocalUserID).(string)
	return id
}
