package appointments

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

func (h *Handler) getAppointmentsHandler(c *fiber.Ctx) error {
	f := ListFilter{
		ListQuery: helper.ParseListQuery(c),
		Status:    c.Query("status"),
		Email:     c.Query("email"),
	}
	if v := c.Query("date"); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.BadRequest("date: " + err.Error())
		}
		f.Date = d.Time
	}
	rows, total, err := h.service.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) getAppointmentByIdHandler(c *fiber.Ctx) error {
	a, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, a)
}

func (h *Handler) postAppointmentHandler(c *fiber.Ctx) error {
	var in AppointmentInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	a, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, a)
}

func (h *Handler) putAppointmentHandler(c *fiber.Ctx) error {
	a, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, a)
}

func (h *Handler) patchStatusHandler(c *fiber.Ctx) error {
	var in StatusInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	a, err := h.service.SetStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, a)
}

func (h *Handler) deleteAppointmentHandler(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"_id": c.Params("id"), "deleted": true})
}

func (h *Handler) searchAppointmentsHandler(c *fiber.Ctx) error {
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
