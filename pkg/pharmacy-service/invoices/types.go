package invoices

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const (
	collectionName = "inventory_invoices"
	sequenceKey    = "inventory_invoice"

	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCancelled = "cancelled"
)

type Medicine struct {
	Name     string  `json:"name" bson:"name" validate:"required,max=150"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"min=1"`
}

type InventoryInvoice struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	InvoiceNumber string              `json:"invoiceNumber" bson:"invoiceNumber"`
	SupplierEmail string              `json:"supplierEmail" bson:"supplierEmail"`
	RequestID     *primitive.ObjectID `json:"requestId,omitempty" bson:"requestId,omitempty"`
	Medicines     []Medicine          `json:"medicines" bson:"medicines"`
	Status        string              `json:"status" bson:"status"`
	TotalAmount   float64             `json:"totalAmount" bson:"totalAmount"`
	Notes         string              `json:"notes" bson:"notes"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// InvoiceInput has no totalAmount: the total is always derived from the medicines.
type InvoiceInput struct {
	SupplierEmail string     `json:"supplierEmail" validate:"omitempty,email"`
	RequestID     string     `json:"requestId" validate:"omitempty,objectid"`
	Medicines     []Medicine `json:"medicines" validate:"required,min=1,dive"`
	Status        string     `json:"status" validate:"omitempty,oneof=pending approved cancelled"`
	Notes         string     `json:"notes" validate:"max=2000"`
}

// fields is the storable part of an invoice written on create and update.
type fields struct {
	SupplierEmail string              `bson:"supplierEmail"`
	RequestID     *primitive.ObjectID `bson:"requestId"`
	Medicines     []Medicine          `bson:"medicines"`
	Status        string              `bson:"status"`
	TotalAmount   float64             `bson:"totalAmount"`
	Notes         string              `bson:"notes"`
}

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved cancelled"`
}

type ListFilter struct {
	helper.ListQuery
	Status        string
	SupplierEmail string
}

// TotalAmount is the sum of price x quantity rounded to cents.
func TotalAmount(medicines []Medicine) float64 {
	total := 0.0
	for _, m := range medicines {
		total += m.Price * float64(m.Quantity)
	}
	return helper.Round2(total)
}

func (i InventoryInvoice) input() InvoiceInput {
	in := InvoiceInput{SupplierEmail: i.SupplierEmail, Medicines: i.Medicines, Status: i.Status, Notes: i.Notes}
	if i.RequestID != nil {
		in.RequestID = i.RequestID.Hex()
	}
	return in
}

var gridColumns = map[string]bool{
	"invoiceNumber": true, "supplierEmail": true, "status": true, "totalAmount": true,
	"medicines.name": true, "createdAt": true,
}
