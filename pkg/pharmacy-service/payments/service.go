package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/teris-io/shortid"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/cart"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/expenses"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Payment"

// Expenses is implemented by expenses.Service.
type Expenses interface {
	Payable(ctx context.Context, id string) (expenses.Expense, error)
	AttachPaymentOrder(ctx context.Context, id string, orderID string) (expenses.Expense, error)
	SettlePayment(ctx context.Context, orderID string, paymentID string, paid bool) (expenses.Expense, error)
}

// Carts is implemented by cart.Service.
type Carts interface {
	Get(ctx context.Context, email string) (cart.View, error)
	Clear(ctx context.Context, email string) error
}

type Service struct {
	repo     Repository
	gateway  Gateway
	cfg      Config
	expenses Expenses
	carts    Carts
	newID    func() (string, error)
	now      func() time.Time
}

func NewService(repo Repository, gateway Gateway, cfg Config, expenses Expenses, carts Carts) *Service {
	return &Service{
		repo:     repo,
		gateway:  gateway,
		cfg:      cfg,
		expenses: expenses,
		carts:    carts,
		newID:    shortid.Generate,
		now:      time.Now,
	}
}

func (s *Service) Get(ctx context.Context, orderID string) (Payment, error) {
	p, err := s.repo.GetByOrder(ctx, orderID)
	return p, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) start(ctx context.Context, purpose string, reference string, description string, amount float64, customer Customer) (Checkout, error) {
	if err := helper.ValidateStruct("Customer", customer); err != nil {
		return Checkout{}, err
	}
	orderID, err := s.newID()
	if err != nil {
		return Checkout{}, helper.Unexpected("PAYMENT_ERROR", err.Error())
	}
	order := Order{
		OrderID:     orderID,
		Description: description,
		Amount:      helper.Round2(amount),
		Currency:    s.gateway.Currency(),
		Customer:    customer,
	}
	checkout, err := s.gateway.Checkout(ctx, order)
	if err != nil {
		helper.Logger.Error().Err(err).Str("gateway", s.gateway.Name()).Str("orderId", orderID).Msg("checkout failed")
		return Checkout{}, helper.Unexpected("PAYMENT_ERROR", err.Error())
	}
	now := s.now().UTC()
	_, err = s.repo.Create(ctx, Payment{
		OrderID:     orderID,
		Gateway:     s.gateway.Name(),
		Purpose:     purpose,
		ReferenceID: reference,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Status:      StatusInitiated,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Checkout{}, database.Normalize(err, entity, "CREATE_ERROR")
	}
	return checkout, nil
}

// CheckoutExpense opens a gateway order for an unpaid expense.
func (s *Service) CheckoutExpense(ctx context.Context, id string, customer Customer) (Checkout, error) {
	e, err := s.expenses.Payable(ctx, id)
	if err != nil {
		return Checkout{}, err
	}
	checkout, err := s.start(ctx, PurposeExpense, e.ID.Hex(), e.Title, e.Amount, customer)
	if err != nil {
		return Checkout{}, err
	}
	if _, err := s.expenses.AttachPaymentOrder(ctx, id, checkout.OrderID); err != nil {
		return Checkout{}, err
	}
	return checkout, nil
}

// CheckoutCart opens a gateway order for the current cart total.
func (s *Service) CheckoutCart(ctx context.Context, email string, customer Customer) (Checkout, error) {
	view, err := s.carts.Get(ctx, email)
	if err != nil {
		return Checkout{}, err
	}
	if view.Empty() {
		return Checkout{}, helper.BadRequest("Cart is empty")
	}
	if customer.Email == "" {
		customer.Email = view.UserEmail
	}
	return s.start(ctx, PurposeCart, view.UserEmail, fmt.Sprintf("Pharmacy order (%d items)", len(view.Items)), view.Total, customer)
}

// settle applies a gateway status to the payment and its expense or cart.
func (s *Service) settle(ctx context.Context, p Payment, gateway string, status string, gatewayPaymentID string) (Payment, error) {
	orderID := p.OrderID
	if p.Gateway != gateway {
		helper.Logger.Warn().Str("orderId", orderID).Str("gateway", gateway).Str("opened", p.Gateway).Msg("notification from the wrong gateway")
		return Payment{}, helper.BadRequest("Payment " + orderID + " was not opened through " + gateway)
	}
	if p.Status == status {
		return p, nil
	}
	updated, err := s.repo.SetStatus(ctx, p.ID, status, gatewayPaymentID)
	if err != nil {
		return Payment{}, database.Normalize(err, entity, "UPDATE_ERROR")
	}
	helper.Logger.Info().Str("orderId", orderID).Str("purpose", p.Purpose).Str("status", status).Msg("payment settled")

	switch p.Purpose {
	case PurposeExpense:
		switch status {
		case StatusSuccess:
			_, err = s.expenses.SettlePayment(ctx, orderID, gatewayPaymentID, true)
		case StatusFailed, StatusCancelled, StatusChargedBack:
			_, err = s.expenses.SettlePayment(ctx, orderID, gatewayPaymentID, false)
		}
	case PurposeCart:
		if status == StatusSuccess {
			err = s.carts.Clear(ctx, p.ReferenceID)
		}
	}
	if err != nil {
		return Payment{}, err
	}
	return updated, nil
}

func (s *Service) HandlePayHere(ctx context.Context, n PayHereNotification) (Payment, error) {
	if n.MerchantID != s.cfg.PayHere.MerchantID ||
		!helper.VerifyPayHereNotification(s.cfg.PayHere, n.OrderID, n.PayhereAmount, n.PayhereCurrency, n.StatusCode, n.Md5sig) {
		helper.Logger.Warn().Str("orderId", n.OrderID).Msg("payhere notification with invalid signature")
		return Payment{}, helper.BadRequest("Invalid payment signature")
	}
	status, ok := payHereStatuses[n.StatusCode]
	if !ok {
		return Payment{}, helper.BadRequest("Unknown status_code " + n.StatusCode)
	}
	p, err := s.Get(ctx, n.OrderID)
	if err != nil {
		return Payment{}, err
	}
	if helper.FormatAmount(p.Amount) != n.PayhereAmount || p.Currency != n.PayhereCurrency {
		return Payment{}, helper.BadRequest("Payment amount mismatch")
	}
	return s.settle(ctx, p, GatewayPayHere, status, n.PaymentID)
}

func (s *Service) HandleCashfree(ctx context.Context, timestamp string, signature string, body []byte) (Payment, error) {
	if !helper.VerifyCashfreeSignature(s.cfg.Cashfree.SecretKey, timestamp, body, signature) {
		helper.Logger.Warn().Msg("cashfree webhook with invalid signature")
		return Payment{}, helper.BadRequest("Invalid payment signature")
	}
	var hook cashfreeWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return Payment{}, helper.BadRequest("Invalid webhook body: " + err.Error())
	}
	status, ok := cashfreeStatuses[hook.Data.Payment.PaymentStatus]
	if !ok {
		return Payment{}, helper.BadRequest("Unknown payment_status " + hook.Data.Payment.PaymentStatus)
	}
	p, err := s.Get(ctx, hook.Data.Order.OrderID)
	if err != nil {
		return Payment{}, err
	}
	if helper.Round2(hook.Data.Order.OrderAmount) != p.Amount {
		return Payment{}, helper.BadRequest("Payment amount mismatch")
	}
	return s.settle(ctx, p, GatewayCashfree, status, hook.paymentID())
}
