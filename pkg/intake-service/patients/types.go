package patients

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const collectionName = "patient_forms"

const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type PatientForm struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FullName      string             `json:"fullName" bson:"fullName"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	DateOfBirth   helper.Date        `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender        string             `json:"gender" bson:"gender"`
	Address       string             `json:"address" bson:"address"`
	Reason        string             `json:"reason" bson:"reason"`
	PreferredDate helper.Date        `json:"preferredDate" bson:"preferredDate"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PatientInput struct {
	FullName      string      `json:"fullName" bson:"fullName" validate:"required,min=2,max=100"`
	Email         string      `json:"email" bson:"email" validate:"required,email"`
	Phone         string      `json:"phone" bson:"phone" validate:"required,phone"`
	DateOfBirth   helper.Date `json:"dateOfBirth" bson:"dateOfBirth" validate:"required"`
	Gender        string      `json:"gender" bson:"gender" validate:"omitempty,oneof=male female other"`
	Address       string      `json:"address" bson:"address" validate:"max=250"`
	Reason        string      `json:"reason" bson:"reason" validate:"required,max=1000"`
	PreferredDate helper.Date `json:"preferredDate" bson:"preferredDate" validate:"required"`
	Status        string      `json:"status" bson:"status" validate:"omitempty,oneof=pending scheduled completed cancelled"`
}

type ListFilter struct {
	helper.ListQuery
	Status string
	Email  string
}

func (p PatientForm) input() PatientInput {
	return PatientInput{
		FullName:      p.FullName,
		Email:         p.Email,
		Phone:         p.Phone,
		DateOfBirth:   p.DateOfBirth,
		Gender:        p.Gender,
		Address:       p.Address,
		Reason:        p.Reason,
		PreferredDate: p.PreferredDate,
		Status:        p.Status,
	}
}

var gridColumns = map[string]bool{
	"fullName": true, "email": true, "phone": true, "gender": true, "reason": true,
	"preferredDate": true, "status": true, "createdAt": true,
}
