package appointments

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/appointments", "Lab appointment APIs")
	r.Get("/", h.getAppointmentsHandler)
	r.Post("/", h.postAppointmentHandler)
	r.Post("/search", h.searchAppointmentsHandler)
	r.Get("/:id", h.getAppointmentByIdHandler)
	r.Put("/:id", h.putAppointmentHandler)
	r.Patch("/:id/status", h.patchStatusHandler)
	r.Delete("/:id", h.deleteAppointmentHandler)
}
