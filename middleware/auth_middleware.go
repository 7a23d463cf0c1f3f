package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/internal/util"
)

// UserIDKey is the Locals key under which the authenticated user id is stored.
const UserIDKey = "x-user-id"

// JwtAuthMiddleware rejects any request that does not carry a valid bearer
// token. It runs before the handlers, so unauthenticated requests never reach
// the services.
func JwtAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Missing authorization header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Authorization header format must be Bearer {token}"})
		}

		token := parts[1]
		authorized, err := util.IsAuthorized(token, secret)
		if err != nil || !authorized {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Not authorized or invalid token"})
		}

		userID, err := util.ExtractIDFromToken(token, secret)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Could not extract user from token"})
		}

		c.Locals(UserIDKey, userID)

		return c.Next()
	}
}
