package info

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts /info and /info/health; both stay outside JWT validation.
func SetupRoutes(app *fiber.App, service string, version string, ping Pinger) {
	h := &handler{service: service, version: version, started: time.Now(), ping: ping}
	info := app.Group("/info")
	info.Get("/", h.getInfoHandler)
	info.Get("/health", h.getHealthHandler)
}
