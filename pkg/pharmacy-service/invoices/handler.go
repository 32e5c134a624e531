package invoices

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

func (h *Handler) getInvoicesHandler(c *fiber.Ctx) error {
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

func (h *Handler) getInvoiceByIdHandler(c *fiber.Ctx) error {
	inv, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, inv)
}

func (h *Handler) postInvoiceHandler(c *fiber.Ctx) error {
	var in InvoiceInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	inv, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, inv)
}

func (h *Handler) putInvoiceHandler(c *fiber.Ctx) error {
	inv, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, inv)
}

func (h *Handler) patchStatusHandler(c *fiber.Ctx) error {
	var in StatusInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	inv, err := h.service.SetStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, inv)
}

func (h *Handler) deleteInvoiceHandler(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"_id": c.Params("id"), "deleted": true})
}

func (h *Handler) getInvoicePdfHandler(c *fiber.Ctx) error {
	name, data, err := h.service.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(data)
}

func (h *Handler) postInvoicePdfHandler(c *fiber.Ctx) error {
	url, err := h.service.StorePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"url": url})
}

func (h *Handler) searchInvoicesHandler(c *fiber.Ctx) error {
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
