package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const collectionName = "carts"

type CartItem struct {
	InventoryItem primitive.ObjectID `json:"inventoryItem" bson:"inventoryItem"`
	Quantity      int                `json:"quantity" bson:"quantity"`
}

type Cart struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserEmail string             `json:"userEmail" bson:"userEmail"`
	Items     []CartItem         `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type AddItemInput struct {
	InventoryItem string `json:"inventoryItem" validate:"required,objectid"`
	Quantity      int    `json:"quantity" validate:"min=1"`
}

type QuantityInput struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

type owner struct {
	Email string `json:"email" validate:"required,email"`
}

// Line is a cart item priced against the current inventory record.
type Line struct {
	InventoryItem primitive.ObjectID `json:"inventoryItem"`
	Name          string             `json:"name"`
	Code          string             `json:"code"`
	Price         float64            `json:"price"`
	ImageURL      string             `json:"imageUrl"`
	Quantity      int                `json:"quantity"`
	LineTotal     float64            `json:"lineTotal"`
}

type View struct {
	UserEmail string    `json:"userEmail"`
	Items     []Line    `json:"items"`
	Total     float64   `json:"total"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (v View) Empty() bool {
	return len(v.Items) == 0
}
