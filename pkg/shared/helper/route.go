package helper

import (
	"github.com/gofiber/fiber/v2"
)

// authRequired is switched on at startup from AUTH_REQUIRED.
var authRequired = false

func RequireAuth(required bool) {
	authRequired = required
}

func AuthRequired() bool {
	return authRequired
}

func CreateRouteGroup(app *fiber.App, path string, desc string) fiber.Router {
	r := app.Group(path)
	//without JWT Token validation (without auth)
	r.Get("/info", func(c *fiber.Ctx) error {
		return c.SendString(desc)
	})
	if authRequired {
		r.Use(JWTMiddleware())
	}
	return r
}
