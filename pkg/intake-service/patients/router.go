package patients

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/patients", "Patient intake APIs")
	r.Get("/", h.getPatientsHandler)
	r.Post("/", h.postPatientHandler)
	r.Post("/search", h.searchPatientsHandler)
	r.Get("/:id", h.getPatientByIdHandler)
	r.Put("/:id", h.putPatientHandler)
	r.Delete("/:id", h.deletePatientHandler)
}
