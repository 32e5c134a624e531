package invoices

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/inventory-invoices", "Inventory invoice APIs")
	r.Get("/", h.getInvoicesHandler)
	r.Post("/", h.postInvoiceHandler)
	r.Post("/search", h.searchInvoicesHandler)
	r.Get("/:id", h.getInvoiceByIdHandler)
	r.Put("/:id", h.putInvoiceHandler)
	r.Patch("/:id/status", h.patchStatusHandler)
	r.Delete("/:id", h.deleteInvoiceHandler)
	r.Get("/:id/pdf", h.getInvoicePdfHandler)
	r.Post("/:id/pdf", h.postInvoicePdfHandler)
}
