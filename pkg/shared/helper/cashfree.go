package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	cashfreeSDK "github.com/cashfree/cashfree-pg-sdk-go/implementation"
	"github.com/google/uuid"
)

type CashfreeConfig struct {
	AppID       string
	SecretKey   string
	ApiVersion  string
	Environment string
	ReturnURL   string
	NotifyURL   string
	Currency    string
}

func CashfreeConfigFromEnv() CashfreeConfig {
	return CashfreeConfig{
		AppID:       GetenvStr("CASHFREE_APPID", ""),
		SecretKey:   GetenvStr("CASHFREE_SECRETKEY", ""),
		ApiVersion:  GetenvStr("CASHFREE_API_VERSION", "2022-01-01"),
		Environment: strings.ToUpper(GetenvStr("CASHFREE_ENVIRONMENT", "SANDBOX")),
		ReturnURL:   GetenvStr("CASHFREE_RETURN_URL", "http://localhost:3000/payment/status/{order_id}"),
		NotifyURL:   GetenvStr("CASHFREE_NOTIFY_URL", "http://localhost:8070/api/payments/cashfree/notify"),
		Currency:    GetenvStr("CASHFREE_CURRENCY", "INR"),
	}
}

type OrderRequest struct {
	OrderId        string  `json:"order_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	CustomerId     string  `json:"customer_id"`
	CustomerMobile string  `json:"customer_mobile"`
	CustomerEmail  string  `json:"customer_email"`
	Note           string  `json:"note"`
}

type OrderResponse struct {
	OrderId     string `json:"order_id"`
	OrderToken  string `json:"order_token"`
	OrderStatus string `json:"order_status"`
	PaymentLink string `json:"payment_link"`
}

// CashfreeClient creates hosted-checkout orders through the Cashfree PG SDK.
type CashfreeClient struct {
	cfg CashfreeConfig
}

func NewCashfreeClient(cfg CashfreeConfig) *CashfreeClient {
	return &CashfreeClient{cfg: cfg}
}

func (c *CashfreeClient) getSession() cashfreeSDK.CFConfig {
	env := cashfreeSDK.SANDBOX
	if c.cfg.Environment == "PRODUCTION" {
		env = cashfreeSDK.PRODUCTION
	}
	return cashfreeSDK.CFConfig{
		Environment:  &env,
		ApiVersion:   &c.cfg.ApiVersion,
		ClientId:     &c.cfg.AppID,
		ClientSecret: &c.cfg.SecretKey,
	}
}

func getHeader() cashfreeSDK.CFHeader {
	idempotencyKey := uuid.New().String()
	requestId := uuid.NewString()
	return cashfreeSDK.CFHeader{
		RequestID:      &requestId,
		IdempotencyKey: &idempotencyKey,
	}
}

func (c *CashfreeClient) getRequest(request OrderRequest) cashfreeSDK.CFOrderRequest {
	orderMeta := cashfreeSDK.CFOrderMeta{
		ReturnUrl: c.cfg.ReturnURL,
		NotifyUrl: c.cfg.NotifyURL,
	}
	currency := request.Currency
	if currency == "" {
		currency = c.cfg.Currency
	}
	return cashfreeSDK.CFOrderRequest{
		OrderId:       &request.OrderId,
		OrderAmount:   request.Amount,
		OrderCurrency: currency,
		CustomerDetails: cashfreeSDK.CFCustomerDetails{
			CustomerId:    request.CustomerId,
			CustomerEmail: request.CustomerEmail,
			CustomerPhone: request.CustomerMobile,
		},
		OrderNote: &request.Note,
		OrderMeta: &orderMeta,
	}
}

func (c *CashfreeClient) CreateOrder(request OrderRequest) (OrderResponse, error) {
	session := c.getSession()
	header := getHeader()
	cfOrder, _, cfError := cashfreeSDK.CreateOrder(&session, &header, c.getRequest(request))
	var res OrderResponse
	if cfError != nil {
		return res, errors.New(cfError.GetCode() + "-" + cfError.GetMessage())
	}
	res.OrderId = cfOrder.GetOrderId()
	res.OrderToken = cfOrder.GetOrderToken()
	res.OrderStatus = cfOrder.GetOrderStatus()
	res.PaymentLink = cfOrder.GetPaymentLink()
	return res, nil
}

// VerifyCashfreeSignature checks x-webhook-signature: base64(HMAC-SHA256(timestamp + body)).
// An empty secret verifies nothing.
func VerifyCashfreeSignature(secretKey string, timestamp string, body []byte, signature string) bool {
	if secretKey == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
