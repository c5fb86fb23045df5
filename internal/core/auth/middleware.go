package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Require returns a middleware that rejects requests without a valid
// operator session token. The verified role is stored in request locals.
func Require(a *Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token format",
			})
		}

		claims, err := a.Verify(tokenString)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("operator_role", claims.Role)
		return c.Next()
	}
}
