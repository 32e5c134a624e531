package inventory

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/inventory", "Inventory APIs")
	r.Get("/", h.getItemsHandler)
	r.Post("/", h.postItemHandler)
	r.Get("/expiring", h.getExpiringHandler)
	r.Get("/export", h.getExportHandler)
	r.Post("/import", h.postImportHandler)
	r.Post("/search", h.searchItemsHandler)
	r.Get("/:id", h.getItemByIdHandler)
	r.Put("/:id", h.putItemHandler)
	r.Delete("/:id", h.deleteItemHandler)
	r.Patch("/:id/stock", h.patchStockHandler)
	r.Post("/:id/image", h.postImageHandler)
}
