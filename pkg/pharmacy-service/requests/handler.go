package requests

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

func (h *Handler) getRequestsHandler(c *fiber.Ctx) error {
	rows, total, err := h.service.List(c.UserContext(), ListFilter{
		ListQuery:     helper.ParseListQuery(c),
		Status:        c.Query("status"),
		SupplierEmail: c.Query("supplierEmail"),
	})
	if err != nil {
		return err
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) getRequestByIdHandler(c *fiber.Ctx) error {
	req, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, req)
}

func (h *Handler) postRequestHandler(c *fiber.Ctx) error {
	var in RequestInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	req, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, req)
}

func (h *Handler) putRequestHandler(c *fiber.Ctx) error {
	req, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, req)
}

func (h *Handler) patchStatusHandler(c *fiber.Ctx) error {
	var in StatusInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	req, err := h.service.SetStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, req)
}

func (h *Handler) deleteRequestHandler(c *fiber.Ctx) error {
	req, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, req)
}

func (h *Handler) searchRequestsHandler(c *fiber.Ctx) error {
	gr, err := helper.ParseGridRequest(c)
	if err != nil {
		return err
	}
	res, err := h.service.Search(c.UserContext(), gr)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, res)
}
