package appointments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const collectionName = "appointments"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientName     string             `json:"patientName" bson:"patientName"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone" bson:"phone"`
	TestType        string             `json:"testType" bson:"testType"`
	AppointmentDate helper.Date        `json:"appointmentDate" bson:"appointmentDate"`
	AppointmentTime string             `json:"appointmentTime" bson:"appointmentTime"`
	DoctorName      string             `json:"doctorName" bson:"doctorName"`
	Notes           string             `json:"notes" bson:"notes"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type AppointmentInput struct {
	PatientName     string      `json:"patientName" bson:"patientName" validate:"required,max=100"`
	Email           string      `json:"email" bson:"email" validate:"required,email"`
	Phone           string      `json:"phone" bson:"phone" validate:"required,phone"`
	TestType        string      `json:"testType" bson:"testType" validate:"required,max=100"`
	AppointmentDate helper.Date `json:"appointmentDate" bson:"appointmentDate" validate:"required"`
	AppointmentTime string      `json:"appointmentTime" bson:"appointmentTime" validate:"required,hhmm"`
	DoctorName      string      `json:"doctorName" bson:"doctorName" validate:"max=100"`
	Notes           string      `json:"notes" bson:"notes" validate:"max=1000"`
	Status          string      `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type ListFilter struct {
	helper.ListQuery
	Status string
	Email  string
	// Date selects appointments on that calendar day (UTC); zero means any day.
	Date time.Time
}

func (a Appointment) input() AppointmentInput {
	return AppointmentInput{
		PatientName:     a.PatientName,
		Email:           a.Email,
		Phone:           a.Phone,
		TestType:        a.TestType,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		DoctorName:      a.DoctorName,
		Notes:           a.Notes,
		Status:          a.Status,
	}
}

var gridColumns = map[string]bool{
	"patientName": true, "email": true, "phone": true, "testType": true, "appointmentDate": true,
	"appointmentTime": true, "doctorName": true, "status": true, "createdAt": true,
}
