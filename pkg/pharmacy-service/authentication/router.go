package authentication

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service, limiter *helper.IPRateLimiter) {
	h := NewHandler(service)
	//without JWT Token validation (without auth)
	auth := app.Group("/auth")
	auth.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Auth APIs")
	})
	limit := helper.RateLimitMiddleware(limiter)
	auth.Post("/register", limit, h.registerHandler)
	auth.Post("/login", limit, h.loginHandler)
	// JWT Middleware
	auth.Use(helper.JWTMiddleware())
	// Restricted Routes
	auth.Get("/profile", h.getProfileHandler)
	auth.Put("/profile", h.putProfileHandler)
	auth.Post("/change-password", h.changePasswordHandler)
}
