package cart

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	r := helper.CreateRouteGroup(app, "/api/cart", "Cart APIs")
	r.Get("/:email", h.getCartHandler)
	r.Delete("/:email", h.deleteCartHandler)
	r.Post("/:email/items", h.postItemHandler)
	r.Put("/:email/items/:itemId", h.putItemHandler)
	r.Delete("/:email/items/:itemId", h.deleteItemHandler)
}
