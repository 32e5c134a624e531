package inventory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const collectionName = "inventory"

type Item struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Code          string             `json:"code" bson:"code"`
	Description   string             `json:"description" bson:"description"`
	Category      string             `json:"category" bson:"category"`
	Manufacturer  string             `json:"manufacturer" bson:"manufacturer"`
	Price         float64            `json:"price" bson:"price"`
	Quantity      int                `json:"quantity" bson:"quantity"`
	SupplierEmail string             `json:"supplierEmail" bson:"supplierEmail"`
	ExpiryDate    helper.Date        `json:"expiryDate" bson:"expiryDate"`
	ImageURL      string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ItemInput struct {
	Name          string      `json:"name" bson:"name" validate:"required,max=150"`
	Code          string      `json:"code" bson:"code" validate:"required,max=50"`
	Description   string      `json:"description" bson:"description" validate:"max=1000"`
	Category      string      `json:"category" bson:"category" validate:"max=100"`
	Manufacturer  string      `json:"manufacturer" bson:"manufacturer" validate:"max=150"`
	Price         float64     `json:"price" bson:"price" validate:"gte=0"`
	Quantity      int         `json:"quantity" bson:"quantity" validate:"gte=0"`
	SupplierEmail string      `json:"supplierEmail" bson:"supplierEmail" validate:"omitempty,email"`
	ExpiryDate    helper.Date `json:"expiryDate" bson:"expiryDate" validate:"required"`
	ImageURL      string      `json:"imageUrl" bson:"imageUrl" validate:"omitempty,url"`
}

type StockInput struct {
	Delta int `json:"delta" validate:"ne=0"`
}

// ListFilter narrows GET /api/inventory.
type ListFilter struct {
	helper.ListQuery
	SupplierEmail string
	// LowStock selects items with quantity <= LowStock when >= 0
	LowStock int
}

type ImportFailure struct {
	Line   int      `json:"line"`
	Code   string   `json:"code,omitempty"`
	Errors []string `json:"errors"`
}

type ImportResult struct {
	Created int             `json:"created"`
	Updated int             `json:"updated"`
	Failed  []ImportFailure `json:"failed"`
}

func (i Item) input() ItemInput {
	return ItemInput{
		Name:          i.Name,
		Code:          i.Code,
		Description:   i.Description,
		Category:      i.Category,
		Manufacturer:  i.Manufacturer,
		Price:         i.Price,
		Quantity:      i.Quantity,
		SupplierEmail: i.SupplierEmail,
		ExpiryDate:    i.ExpiryDate,
		ImageURL:      i.ImageURL,
	}
}

var sheetColumns = []helper.SheetColumn{
	{Header: "Name", Field: "name", DataType: "string"},
	{Header: "Code", Field: "code", DataType: "string"},
	{Header: "Description", Field: "description", DataType: "string"},
	{Header: "Category", Field: "category", DataType: "string"},
	{Header: "Manufacturer", Field: "manufacturer", DataType: "string"},
	{Header: "Price", Field: "price", DataType: "float64"},
	{Header: "Quantity", Field: "quantity", DataType: "int"},
	{Header: "Supplier Email", Field: "supplierEmail", DataType: "string"},
	{Header: "Expiry Date", Field: "expiryDate", DataType: "date"},
}

var gridColumns = map[string]bool{
	"name": true, "code": true, "category": true, "manufacturer": true, "price": true,
	"quantity": true, "supplierEmail": true, "expiryDate": true, "createdAt": true,
}
