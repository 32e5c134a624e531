package email

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) sendEmailHandler(c *fiber.Ctx) error {
	var m Message
	if err := helper.ParseBody(c, &m); err != nil {
		return err
	}
	if err := h.service.Send(c.UserContext(), m); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"to": m.To, "sent": true})
}
