package payments

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const collectionName = "payments"

const (
	PurposeExpense = "expense"
	PurposeCart    = "cart"
)

const (
	StatusInitiated   = "initiated"
	StatusSuccess     = "success"
	StatusPending     = "pending"
	StatusCancelled   = "cancelled"
	StatusFailed      = "failed"
	StatusChargedBack = "chargedback"
)

type Payment struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OrderID          string             `json:"orderId" bson:"orderId"`
	Gateway          string             `json:"gateway" bson:"gateway"`
	Purpose          string             `json:"purpose" bson:"purpose"`
	ReferenceID      string             `json:"referenceId" bson:"referenceId"`
	Amount           float64            `json:"amount" bson:"amount"`
	Currency         string             `json:"currency" bson:"currency"`
	Status           string             `json:"status" bson:"status"`
	GatewayPaymentID string             `json:"gatewayPaymentId,omitempty" bson:"gatewayPaymentId,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Customer details forwarded to the hosted checkout. All optional.
type Customer struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Address   string `json:"address" validate:"max=250"`
	City      string `json:"city" validate:"max=100"`
	Country   string `json:"country" validate:"max=100"`
}

// Order is what a gateway is asked to collect.
type Order struct {
	OrderID     string
	Description string
	Amount      float64
	Currency    string
	Customer    Customer
}

type Checkout struct {
	OrderID     string            `json:"orderId"`
	Gateway     string            `json:"gateway"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	ActionURL   string            `json:"actionUrl,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
	PaymentLink string            `json:"paymentLink,omitempty"`
	OrderToken  string            `json:"orderToken,omitempty"`
}

// PayHereNotification is the form PayHere posts to notify_url.
type PayHereNotification struct {
	MerchantID      string `form:"merchant_id"`
	OrderID         string `form:"order_id"`
	PaymentID       string `form:"payment_id"`
	PayhereAmount   string `form:"payhere_amount"`
	PayhereCurrency string `form:"payhere_currency"`
	StatusCode      string `form:"status_code"`
	Md5sig          string `form:"md5sig"`
	Method          string `form:"method"`
	StatusMessage   string `form:"status_message"`
}

type cashfreeWebhook struct {
	Type string `json:"type"`
	Data struct {
		Order struct {
			OrderID     string  `json:"order_id"`
			OrderAmount float64 `json:"order_amount"`
		} `json:"order"`
		Payment struct {
			CfPaymentID   json.RawMessage `json:"cf_payment_id"`
			PaymentStatus string          `json:"payment_status"`
		} `json:"payment"`
	} `json:"data"`
}

func (w cashfreeWebhook) paymentID() string {
	return strings.Trim(string(w.Data.Payment.CfPaymentID), `"`)
}

var payHereStatuses = map[string]string{
	helper.PayHereSuccess:     StatusSuccess,
	helper.PayHerePending:     StatusPending,
	helper.PayHereCancelled:   StatusCancelled,
	helper.PayHereFailed:      StatusFailed,
	helper.PayHereChargedBack: StatusChargedBack,
}

var cashfreeStatuses = map[string]string{
	"SUCCESS":       StatusSuccess,
	"PENDING":       StatusPending,
	"NOT_ATTEMPTED": StatusPending,
	"USER_DROPPED":  StatusCancelled,
	"CANCELLED":     StatusCancelled,
	"FAILED":        StatusFailed,
	"VOID":          StatusFailed,
}
