package expenses

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const collectionName = "expenses"

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type Expense struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Amount         float64            `json:"amount" bson:"amount"`
	Category       string             `json:"category" bson:"category"`
	Description    string             `json:"description" bson:"description"`
	Date           helper.Date        `json:"date" bson:"date"`
	PaymentStatus  string             `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod  string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentOrderID string             `json:"paymentOrderId,omitempty" bson:"paymentOrderId,omitempty"`
	PaymentID      string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ExpenseInput struct {
	Title         string      `json:"title" bson:"title" validate:"required,max=200"`
	Amount        float64     `json:"amount" bson:"amount" validate:"gt=0"`
	Category      string      `json:"category" bson:"category" validate:"required,oneof=supplies utilities salaries rent maintenance other"`
	Description   string      `json:"description" bson:"description" validate:"max=2000"`
	Date          helper.Date `json:"date" bson:"date"`
	PaymentStatus string      `json:"paymentStatus" bson:"paymentStatus" validate:"omitempty,oneof=pending paid failed"`
	PaymentMethod string      `json:"paymentMethod" bson:"paymentMethod,omitempty" validate:"omitempty,oneof=cash card online"`
}

type ListFilter struct {
	helper.ListQuery
	Category      string
	PaymentStatus string
	From          time.Time
	To            time.Time
}

type Bucket struct {
	Key   string  `json:"key" bson:"_id"`
	Total float64 `json:"total" bson:"total"`
	Count int     `json:"count" bson:"count"`
}

type Summary struct {
	Total           float64  `json:"total"`
	Count           int      `json:"count"`
	ByCategory      []Bucket `json:"byCategory"`
	ByPaymentStatus []Bucket `json:"byPaymentStatus"`
}

func (e Expense) input() ExpenseInput {
	return ExpenseInput{
		Title:         e.Title,
		Amount:        e.Amount,
		Category:      e.Category,
		Description:   e.Description,
		Date:          e.Date,
		PaymentStatus: e.PaymentStatus,
		PaymentMethod: e.PaymentMethod,
	}
}

var gridColumns = map[string]bool{
	"title": true, "amount": true, "category": true, "date": true,
	"paymentStatus": true, "paymentMethod": true, "createdAt": true,
}
