// internal/api/middleware.go
package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/pkg/auth"
)

// ownerKey is the fiber locals key holding the verified owner id.
const ownerKey = "owner"

// AuthMiddleware requires a valid bearer token on the request and stores
// the verified owner id in the request locals. Missing and rejected tokens
// both end the request with 401.
func AuthMiddleware(verifier auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Missing Authorization header",
			})
		}

		token, err := auth.ExtractTokenFromHeader(header)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Missing Authorization header",
			})
		}

		identity, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Invalid or expired token",
			})
		}

		c.Locals(ownerKey, identity.UserID)
		return c.Next()
	}
}

// ownerFromCtx returns the owner id set by AuthMiddleware.
func ownerFromCtx(c *fiber.Ctx) (string, bool) {
	owner, ok := c.Locals(ownerKey).(string)
	return owner, ok && owner != ""
}
