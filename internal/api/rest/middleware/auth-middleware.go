package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/revtext/backend/internal/helper"
)

// AuthMiddleware verifies the Authorization bearer header and stores the
// claims and the raw credential in the request locals.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get("Authorization"))

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		ctx.Locals("user", user)
		ctx.Locals("bearer", tokenStr)
		return ctx.Next()
	}
}
