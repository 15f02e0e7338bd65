// Package rayid assigns a unique request identifier to every request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the RayID.
const Header = "X-Ray-ID"

// New returns a middleware that ensures every request has a RayID.
// An incoming header value is reused so traces survive proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
