package email

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service, limiter *helper.IPRateLimiter) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/email", "Email APIs")
	r.Post("/send", helper.RateLimitMiddleware(limiter), h.sendEmailHandler)
}
