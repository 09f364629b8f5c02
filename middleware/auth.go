package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sgo/auth"
)

// ClaimsKey is the fiber Locals key holding the *auth.Claims of an
// authenticated request.
const ClaimsKey = "claims"

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication token required",
			})
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// CurrentClaims returns the claims stored by RequireAuth, or nil.
func CurrentClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsKey).(*auth.Claims)
	return claims
}
