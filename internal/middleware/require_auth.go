package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequireAuth rejects requests whose Locals carry no usable user_id.
// The value must be the hex ObjectID the JWT middleware stored; anything
// else means the caller never authenticated.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if _, err := bson.ObjectIDFromHex(uid); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
