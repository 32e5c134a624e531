package clients

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

func (h *Handler) getClientsHandler(c *fiber.Ctx) error {
	rows, total, err := h.service.List(c.UserContext(), helper.ParseListQuery(c))
	if err != nil {
		return err
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) getClientByIdHandler(c *fiber.Ctx) error {
	client, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, client)
}

func (h *Handler) postClientHandler(c *fiber.Ctx) error {
	var in ClientInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	client, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, client)
}

func (h *Handler) putClientHandler(c *fiber.Ctx) error {
	client, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, client)
}

func (h *Handler) deleteClientHandler(c *fiber.Ctx) error {
	client, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, client)
}

func (h *Handler) postClientOrderHandler(c *fiber.Ctx) error {
	var in OrderInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	client, err := h.service.RecordOrder(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, client)
}

func (h *Handler) searchClientsHandler(c *fiber.Ctx) error {
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
