package authentication

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const collectionName = "users"

const (
	RoleAdmin    = "admin"
	RoleSupplier = "supplier"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Company   string             `json:"company" bson:"company"`
	Phone     string             `json:"phone" bson:"phone"`
	Address   string             `json:"address" bson:"address"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin supplier"`
	Company  string `json:"company" validate:"max=150"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Address  string `json:"address" validate:"max=250"`
}

// LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - for Login Response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileInput holds the fields a user may change on their own profile.
type ProfileInput struct {
	Name    string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Company string `json:"company" bson:"company" validate:"max=150"`
	Phone   string `json:"phone" bson:"phone" validate:"omitempty,phone"`
	Address string `json:"address" bson:"address" validate:"max=250"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

func (u User) profile() ProfileInput {
	return ProfileInput{Name: u.Name, Company: u.Company, Phone: u.Phone, Address: u.Address}
}
