package expenses

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return from, to, helper.BadRequest("from: " + err.Error())
		}
		from = d.Time
	}
	if v := c.Query("to"); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return from, to, helper.BadRequest("to: " + err.Error())
		}
		// whole day
		to = d.Time.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func filterOf(c *fiber.Ctx) (ListFilter, error) {
	from, to, err := parseRange(c)
	if err != nil {
		return ListFilter{}, err
	}
	return ListFilter{
		ListQuery:     helper.ParseListQuery(c),
		Category:      c.Query("category"),
		PaymentStatus: c.Query("paymentStatus"),
		From:          from,
		To:            to,
	}, nil
}

func (h *Handler) getExpensesHandler(c *fiber.Ctx) error {
	f, err := filterOf(c)
	if err != nil {
		return err
	}
	rows, total, err := h.service.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) getExpenseByIdHandler(c *fiber.Ctx) error {
	e, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, e)
}

func (h *Handler) postExpenseHandler(c *fiber.Ctx) error {
	var in ExpenseInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	e, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, e)
}

func (h *Handler) putExpenseHandler(c *fiber.Ctx) error {
	e, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, e)
}

func (h *Handler) deleteExpenseHandler(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"_id": c.Params("id"), "deleted": true})
}

func (h *Handler) getSummaryHandler(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}
	sum, err := h.service.Summary(c.UserContext(), from, to)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, sum)
}

func (h *Handler) getExportHandler(c *fiber.Ctx) error {
	f, err := filterOf(c)
	if err != nil {
		return err
	}
	data, err := h.service.Export(c.UserContext(), f)
	if err != nil {
		return err
	}
	c.Attachment("expenses.xlsx")
	c.Set(fiber.HeaderContentType, helper.XLSXContentType)
	return c.Send(data)
}

func (h *Handler) searchExpensesHandler(c *fiber.Ctx) error {
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
