package cart

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

func (h *Handler) getCartHandler(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, view)
}

func (h *Handler) postItemHandler(c *fiber.Ctx) error {
	var in AddItemInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	view, err := h.service.AddItem(c.UserContext(), c.Params("email"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, view)
}

func (h *Handler) putItemHandler(c *fiber.Ctx) error {
	var in QuantityInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	view, err := h.service.UpdateItem(c.UserContext(), c.Params("email"), c.Params("itemId"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, view)
}

func (h *Handler) deleteItemHandler(c *fiber.Ctx) error {
	view, err := h.service.RemoveItem(c.UserContext(), c.Params("email"), c.Params("itemId"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, view)
}

func (h *Handler) deleteCartHandler(c *fiber.Ctx) error {
	if err := h.service.Clear(c.UserContext(), c.Params("email")); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"userEmail": c.Params("email"), "cleared": true})
}
