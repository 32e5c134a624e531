package clients

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const collectionName = "clients"

type Client struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	Address       string             `json:"address" bson:"address"`
	Company       string             `json:"company" bson:"company"`
	Rating        float64            `json:"rating" bson:"rating"`
	TotalOrders   int                `json:"totalOrders" bson:"totalOrders"`
	TotalSpent    float64            `json:"totalSpent" bson:"totalSpent"`
	LastOrderDate helper.Date        `json:"lastOrderDate" bson:"lastOrderDate,omitempty"`
	IsDeleted     bool               `json:"isDeleted" bson:"isDeleted"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ClientInput is the editable part of a client, used for create and update.
type ClientInput struct {
	Name        string  `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" bson:"email" validate:"required,email"`
	Phone       string  `json:"phone" bson:"phone" validate:"required,phone"`
	Address     string  `json:"address" bson:"address" validate:"max=250"`
	Company     string  `json:"company" bson:"company" validate:"max=100"`
	Rating      float64 `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	TotalOrders int     `json:"totalOrders" bson:"totalOrders" validate:"gte=0"`
	TotalSpent  float64 `json:"totalSpent" bson:"totalSpent" validate:"gte=0"`
}

type OrderInput struct {
	Amount float64     `json:"amount" validate:"gte=0"`
	Date   helper.Date `json:"date"`
}

func (c Client) input() ClientInput {
	return ClientInput{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Company:     c.Company,
		Rating:      c.Rating,
		TotalOrders: c.TotalOrders,
		TotalSpent:  c.TotalSpent,
	}
}

var gridColumns = map[string]bool{
	"name": true, "email": true, "phone": true, "company": true, "address": true,
	"rating": true, "totalOrders": true, "totalSpent": true, "lastOrderDate": true, "createdAt": true,
}
