package payments

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App, service *Service) {
	h := NewHandler(service)
	// gateway callbacks carry their own signatures, registered ahead of the JWT middleware
	app.Post("/api/payments/payhere/notify", h.postPayHereNotifyHandler)
	app.Post("/api/payments/cashfree/notify", h.postCashfreeNotifyHandler)

	r := helper.CreateRouteGroup(app, "/api/payments", "Payment APIs")
	r.Post("/expenses/:id", h.postExpenseCheckoutHandler)
	r.Post("/cart/:email", h.postCartCheckoutHandler)
	r.Get("/:orderId", h.getPaymentHandler)
}
