package inventory

import (
	"io"
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

func (h *Handler) getItemsHandler(c *fiber.Ctx) error {
	f := ListFilter{
		ListQuery:     helper.ParseListQuery(c),
		SupplierEmail: c.Query("supplierEmail"),
		LowStock:      -1,
	}
	if v := c.Query("lowStock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return helper.BadRequest("lowStock must be a non-negative integer")
		}
		f.LowStock = n
	}
	rows, total, err := h.service.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) getItemByIdHandler(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, item)
}

func (h *Handler) postItemHandler(c *fiber.Ctx) error {
	var in ItemInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	item, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, item)
}

func (h *Handler) putItemHandler(c *fiber.Ctx) error {
	item, err := h.service.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, item)
}

func (h *Handler) deleteItemHandler(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.SuccessResponse(c, fiber.Map{"_id": c.Params("id"), "deleted": true})
}

func (h *Handler) patchStockHandler(c *fiber.Ctx) error {
	var in StockInput
	if err := helper.ParseBody(c, &in); err != nil {
		return err
	}
	item, err := h.service.AdjustStock(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, item)
}

func (h *Handler) getExpiringHandler(c *fiber.Ctx) error {
	days := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return helper.BadRequest("days must be an integer")
		}
		days = n
	}
	rows, err := h.service.Expiring(c.UserContext(), days)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, rows)
}

func (h *Handler) postImageHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return helper.BadRequest("Image file missing: " + err.Error())
	}
	f, err := file.Open()
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	item, err := h.service.UploadImage(c.UserContext(), c.Params("id"), file.Filename, data)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, item)
}

func (h *Handler) postImportHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return helper.BadRequest("Spreadsheet file missing: " + err.Error())
	}
	f, err := file.Open()
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	defer f.Close()
	result, err := h.service.Import(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, result)
}

func (h *Handler) getExportHandler(c *fiber.Ctx) error {
	data, err := h.service.Export(c.UserContext())
	if err != nil {
		return err
	}
	c.Attachment("inventory.xlsx")
	c.Set(fiber.HeaderContentType, helper.XLSXContentType)
	return c.Send(data)
}

func (h *Handler) searchItemsHandler(c *fiber.Ctx) error {
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
