package patients

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) getPatientsHandler(c *fiber.Ctx) error {
	rows, total, err := h.service.List(c.UserContext(), ListFilter{
		ListQuery: helper.ParseListQuery(c),
		Status:    c.Query("status"),
		Email:     c.Query("email"),
	})
	if err != nil {
		return err
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) getPatientByIdHandler(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, p)
}

func (h *Handler) postPatientHandler(c *fiber.Ctx) error {
	var in PatientInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	p, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, p)
}

func (h *Handler) putPatientHandler(c *fiber.Ctx) error {
	p, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, p)
}

func (h *Handler) deletePatientHandler(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"_id": c.Params("id"), "deleted": true})
}

func (h *Handler) searchPatientsHandler(c *fiber.Ctx) error {
	req, err := helper.ParseGridRequest(c)
	if err != nil {
		return err
	}
	res, err := h.service.Search(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, res)
}
