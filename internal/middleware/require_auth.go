package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequireAuth checks if the request has a user_id in Locals.
// If not -> return 401 Unauthorized.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Locals("user_id"); v == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		} else if uid, ok := v.(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}

// UserIDFrom reads the authenticated principal set by JWTUidOnly.
func UserIDFrom(c *fiber.Ctx) (bson.ObjectID, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok {
			if oid, err := bson.ObjectIDFromHex(s); err == nil {
				return oid, true
			}
		}
	}
	return bson.NilObjectID, false
}
