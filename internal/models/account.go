package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeSavings = "SAVINGS"
	AccountTypeCurrent = "CURRENT"
)

// Account balance is NUMERIC(15,2) and never negative.
type Account struct {
	ID            int64           `json:"id" db:"id"`
	CustomerID    int64           `json:"customerId" db:"customer_id"`
	AccountNumber string          `json:"accountNumber" db:"account_number"`
	AccountType   string          `json:"accountType" db:"account_type"`
	Balance       decimal.Decimal `json:"balance" db:"balance" swaggertype:"string" example:"0.00"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}

// AccountSummary is an account enriched with its owner, as listed to admins.
type AccountSummary struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"60.00"`
	CustomerID    int64           `json:"customerId"`
	CustomerName  string          `json:"customerName"`
}

// Page is one zero-based page of a listing.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
