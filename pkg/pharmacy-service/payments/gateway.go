package payments

import (
	"context"
	"fmt"
	"strings"

	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const (
	GatewayPayHere  = "payhere"
	GatewayCashfree = "cashfree"
)

type Config struct {
	Gateway  string
	PayHere  helper.PayHereConfig
	Cashfree helper.CashfreeConfig
}

func ConfigFromEnv() Config {
	return Config{
		Gateway:  strings.ToLower(helper.GetenvStr("PAYMENT_GATEWAY", GatewayPayHere)),
		PayHere:  helper.PayHereConfigFromEnv(),
		Cashfree: helper.CashfreeConfigFromEnv(),
	}
}

type Gateway interface {
	Name() string
	Currency() string
	Checkout(ctx context.Context, o Order) (Checkout, error)
}

func NewGateway(cfg Config) (Gateway, error) {
	switch cfg.Gateway {
	case GatewayPayHere:
		return &payHereGateway{cfg: cfg.PayHere}, nil
	case GatewayCashfree:
		return &cashfreeGateway{orders: helper.NewCashfreeClient(cfg.Cashfree), currency: cfg.Cashfree.Currency}, nil
	}
	return nil, fmt.Errorf("unknown payment gateway %q", cfg.Gateway)
}

type payHereGateway struct {
	cfg helper.PayHereConfig
}

func (g *payHereGateway) Name() string     { return GatewayPayHere }
func (g *payHereGateway) Currency() string { return g.cfg.Currency }

func orDefault(v string, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Checkout returns the form the browser posts to the PayHere hosted checkout.
func (g *payHereGateway) Checkout(ctx context.Context, o Order) (Checkout, error) {
	if g.cfg.MerchantID == "" || g.cfg.MerchantSecret == "" {
		return Checkout{}, fmt.Errorf("payhere merchant credentials are not configured")
	}
	c := o.Customer
	fields := map[string]string{
		"merchant_id": g.cfg.MerchantID,
		"return_url":  g.cfg.ReturnURL,
		"cancel_url":  g.cfg.CancelURL,
		"notify_url":  g.cfg.NotifyURL,
		"order_id":    o.OrderID,
		"items":       o.Description,
		"currency":    o.Currency,
		"amount":      helper.FormatAmount(o.Amount),
		"first_name":  orDefault(c.FirstName, "MediCare"),
		"last_name":   orDefault(c.LastName, "Customer"),
		"email":       c.Email,
		"phone":       c.Phone,
		"address":     c.Address,
		"city":        orDefault(c.City, "Colombo"),
		"country":     orDefault(c.Country, "Sri Lanka"),
		"hash":        helper.PayHereHash(g.cfg.MerchantID, o.OrderID, o.Amount, o.Currency, g.cfg.MerchantSecret),
	}
	return Checkout{
		OrderID:   o.OrderID,
		Gateway:   GatewayPayHere,
		Amount:    o.Amount,
		Currency:  o.Currency,
		ActionURL: g.cfg.CheckoutURL(),
		Fields:    fields,
	}, nil
}

// orderCreator is satisfied by helper.CashfreeClient.
type orderCreator interface {
	CreateOrder(request helper.OrderRequest) (helper.OrderResponse, error)
}

type cashfreeGateway struct {
	orders   orderCreator
	currency string
}

func (g *cashfreeGateway) Name() string     { return GatewayCashfree }
func (g *cashfreeGateway) Currency() string { return g.currency }

func (g *cashfreeGateway) Checkout(ctx context.Context, o Order) (Checkout, error) {
	customerID := strings.NewReplacer("@", "_", ".", "_").Replace(orDefault(o.Customer.Email, o.OrderID))
	res, err := g.orders.CreateOrder(helper.OrderRequest{
		OrderId:        o.OrderID,
		Amount:         o.Amount,
		Currency:       o.Currency,
		CustomerId:     customerID,
		CustomerMobile: orDefault(o.Customer.Phone, "9999999999"),
		CustomerEmail:  o.Customer.Email,
		Note:           o.Description,
	})
	if err != nil {
		return Checkout{}, err
	}
	return Checkout{
		OrderID:     o.OrderID,
		Gateway:     GatewayCashfree,
		Amount:      o.Amount,
		Currency:    o.Currency,
		PaymentLink: res.PaymentLink,
		OrderToken:  res.OrderToken,
	}, nil
}
