package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDeposit    = "DEPOSIT"
	TransactionTypeWithdrawal = "WITHDRAWAL"
)

// Transaction is an append-only ledger entry.
type Transaction struct {
	ID              int64           `json:"id" db:"id"`
	AccountID       int64           `json:"-" db:"account_id"`
	AccountNumber   string          `json:"accountNumber,omitempty"`
	Type            string          `json:"type" db:"type"`
	Amount          decimal.Decimal `json:"amount" db:"amount" swaggertype:"string" example:"100.00"`
	TransactionTime time.Time       `json:"transactionTime" db:"transaction_time"`
	Description     string          `json:"description" db:"description"`
}

type TransactionRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required,max=20" example:"3f2a9c1e-7b4"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Description   string          `json:"description" validate:"max=255" example:"Salary"`
}

type TransactionResult struct {
	AccountNumber   string          `json:"accountNumber"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter" swaggertype:"string"`
	TransactionID   int64           `json:"transactionId"`
	TransactionTime time.Time       `json:"transactionTime"`
	Description     string          `json:"description"`
}
