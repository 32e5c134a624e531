package requests

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/inventory-requests", "Inventory request APIs")
	r.Get("/", h.getRequestsHandler)
	r.Post("/", h.postRequestHandler)
	r.Post("/search", h.searchRequestsHandler)
	r.Get("/:id", h.getRequestByIdHandler)
	r.Put("/:id", h.putRequestHandler)
	r.Patch("/:id/status", h.patchStatusHandler)
	r.Delete("/:id", h.deleteRequestHandler)
}
