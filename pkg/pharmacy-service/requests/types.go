package requests

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const (
	collectionName = "inventory_requests"
	sequenceKey    = "inventory_request"

	StatusSent     = "sent"
	StatusApproved = "approved"
	StatusIgnored  = "ignored"
)

type RequestItem struct {
	MedicineName string `json:"medicineName" bson:"medicineName" validate:"required,max=150"`
	Manufacturer string `json:"manufacturer" bson:"manufacturer" validate:"required,max=150"`
	Quantity     int    `json:"quantity" bson:"quantity" validate:"min=1"`
}

type InventoryRequest struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	RequestNumber string             `json:"requestNumber" bson:"requestNumber"`
	SupplierEmail string             `json:"supplierEmail" bson:"supplierEmail"`
	Items         []RequestItem      `json:"items" bson:"items"`
	Message       string             `json:"message" bson:"message"`
	Status        string             `json:"status" bson:"status"`
	IsDeleted     bool               `json:"isDeleted" bson:"isDeleted"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ItemInput accepts fractional quantities; they are floored before validation.
type ItemInput struct {
	MedicineName string  `json:"medicineName"`
	Manufacturer string  `json:"manufacturer"`
	Quantity     float64 `json:"quantity"`
}

type RequestInput struct {
	SupplierEmail string      `json:"supplierEmail"`
	Items         []ItemInput `json:"items"`
	Message       string      `json:"message"`
	Status        string      `json:"status"`
}

// draft is the validated, storable form of a RequestInput.
type draft struct {
	SupplierEmail string        `bson:"supplierEmail" json:"supplierEmail" validate:"omitempty,email"`
	Items         []RequestItem `bson:"items" json:"items" validate:"required,min=1,dive"`
	Message       string        `bson:"message" json:"message" validate:"max=2000"`
	Status        string        `bson:"status" json:"status" validate:"oneof=sent approved ignored"`
}

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=sent approved ignored"`
}

type ListFilter struct {
	helper.ListQuery
	Status        string
	SupplierEmail string
}

func (in RequestInput) toDraft() draft {
	d := draft{SupplierEmail: in.SupplierEmail, Message: in.Message, Status: in.Status, Items: []RequestItem{}}
	if d.Status == "" {
		d.Status = StatusSent
	}
	for _, it := range in.Items {
		d.Items = append(d.Items, RequestItem{
			MedicineName: it.MedicineName,
			Manufacturer: it.Manufacturer,
			Quantity:     int(math.Floor(it.Quantity)),
		})
	}
	return d
}

func (r InventoryRequest) input() RequestInput {
	in := RequestInput{SupplierEmail: r.SupplierEmail, Message: r.Message, Status: r.Status}
	for _, it := range r.Items {
		in.Items = append(in.Items, ItemInput{MedicineName: it.MedicineName, Manufacturer: it.Manufacturer, Quantity: float64(it.Quantity)})
	}
	return in
}

var gridColumns = map[string]bool{
	"requestNumber": true, "supplierEmail": true, "status": true, "message": true,
	"items.medicineName": true, "createdAt": true,
}
