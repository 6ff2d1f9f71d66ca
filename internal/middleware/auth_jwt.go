package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTUidOnly parses a bearer token when one is present and puts the
// user id into Locals("user_id"). Requests without a token pass through
// anonymous; RequireAuth gates the routes that need a principal.
func JWTUidOnly(secret string) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims jwt.RegisteredClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return key, nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing sub")
		}

		c.Locals("user_id", claims.Subject)
		return c.Next()
	}
}
