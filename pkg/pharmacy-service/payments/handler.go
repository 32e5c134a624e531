package payments

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

// customerOf reads optional customer details; an empty body is fine.
func customerOf(c *fiber.Ctx) (Customer, error) {
	var customer Customer
	if len(c.Body()) == 0 {
		return customer, nil
	}
	err := helper.ParseBody(c, &customer)
	return customer, err
}

func (h *Handler) postExpenseCheckoutHandler(c *fiber.Ctx) error {
	customer, err := customerOf(c)
	if err != nil {
		return err
	}
	checkout, err := h.service.CheckoutExpense(c.UserContext(), c.Params("id"), customer)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, checkout)
}

func (h *Handler) postCartCheckoutHandler(c *fiber.Ctx) error {
	customer, err := customerOf(c)
	if err != nil {
		return err
	}
	checkout, err := h.service.CheckoutCart(c.UserContext(), c.Params("email"), customer)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, checkout)
}

func (h *Handler) postPayHereNotifyHandler(c *fiber.Ctx) error {
	var n PayHereNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.BadRequest("Invalid notification: " + err.Error())
	}
	p, err := h.service.HandlePayHere(c.UserContext(), n)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, p)
}

func (h *Handler) postCashfreeNotifyHandler(c *fiber.Ctx) error {
	p, err := h.service.HandleCashfree(c.UserContext(),
		c.Get("x-webhook-timestamp"), c.Get("x-webhook-signature"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, p)
}

func (h *Handler) getPaymentHandler(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, p)
}
