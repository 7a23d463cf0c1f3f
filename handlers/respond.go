package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
)

// respondError maps a service error onto the wire. Validation, auth, conflict
// and not-found errors carry their message to the client; anything else is
// logged in full and answered with a generic server error.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Message: err.Error()})
	case domain.IsAuthentication(err):
		return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: err.Error()})
	case domain.IsConflict(err):
		return c.Status(http.StatusConflict).JSON(domain.ErrorResponse{Message: err.Error()})
	case domain.IsNotFound(err):
		return c.Status(http.StatusNotFound).JSON(domain.ErrorResponse{Message: err.Error()})
	default:
		log.Printf("unexpected error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(domain.ErrorResponse{Message: "Server error"})
	}
}
