package models

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// Customer is a registered user of the bank. Password holds the bcrypt hash.
type Customer struct {
	ID          int64     `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Password    string    `json:"-" db:"password"`
	FullName    string    `json:"fullName" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Roles       []string  `json:"roles,omitempty"`
}

type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CustomerSummary is the listing shape for GET /customers/all
type CustomerSummary struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Password    string `json:"password" validate:"required,min=6,max=72" example:"s3cret-pass"`
	FullName    string `json:"fullName" validate:"max=100" example:"Alice Smith"`
	Email       string `json:"email" validate:"omitempty,email,max=100" example:"alice@example.com"`
	PhoneNumber string `json:"phoneNumber" validate:"max=15" example:"+15550100"`
	Role        string `json:"role" validate:"omitempty,max=50" example:"CUSTOMER"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

type LoginResponse struct {
	ID       int64    `json:"id" example:"1"`
	Token    string   `json:"token"`
	Username string   `json:"username" example:"alice"`
	Roles    []string `json:"roles"`
}

const (
	AddressTypeHome   = "HOME"
	AddressTypeOffice = "OFFICE"
)

type Address struct {
	ID           int64  `json:"id" db:"id"`
	CustomerID   int64  `json:"-" db:"customer_id"`
	AddressLine1 string `json:"addressLine1" db:"address_line1"`
	AddressLine2 string `json:"addressLine2" db:"address_line2"`
	City         string `json:"city" db:"city"`
	State        string `json:"state" db:"state"`
	PostalCode   string `json:"postalCode" db:"postal_code"`
	Country      string `json:"country" db:"country"`
	AddressType  string `json:"addressType" db:"address_type"`
}

type AddressRequest struct {
	AddressLine1 string `json:"addressLine1" validate:"required,max=255" example:"1 Main St"`
	AddressLine2 string `json:"addressLine2" validate:"max=255"`
	City         string `json:"city" validate:"max=100" example:"Springfield"`
	State        string `json:"state" validate:"max=100"`
	PostalCode   string `json:"postalCode" validate:"max=20"`
	Country      string `json:"country" validate:"max=100"`
	AddressType  string `json:"addressType" validate:"required,oneof=HOME OFFICE" example:"HOME"`
}
