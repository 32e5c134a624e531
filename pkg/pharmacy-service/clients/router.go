package clients

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/clients", "Client APIs")
	r.Get("/", h.getClientsHandler)
	r.Post("/", h.postClientHandler)
	r.Post("/search", h.searchClientsHandler)
	r.Get("/:id", h.getClientByIdHandler)
	r.Put("/:id", h.putClientHandler)
	r.Delete("/:id", h.deleteClientHandler)
	r.Post("/:id/orders", h.postClientOrderHandler)
}
