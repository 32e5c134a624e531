package expenses

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/expenses", "Expense APIs")
	r.Get("/", h.getExpensesHandler)
	r.Post("/", h.postExpenseHandler)
	r.Get("/summary", h.getSummaryHandler)
	r.Get("/export", h.getExportHandler)
	r.Post("/search", h.searchExpensesHandler)
	r.Get("/:id", h.getExpenseByIdHandler)
	r.Put("/:id", h.putExpenseHandler)
	r.Delete("/:id", h.deleteExpenseHandler)
}
