package models

import "github.com/shopspring/decimal"

// ReportEntry summarises one customer's activity for a calendar month.
// Customers without activity still get an entry with zero totals.
type ReportEntry struct {
	CustomerID      int64           `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Email           string          `json:"email"`
	Addresses       []Address       `json:"addresses"`
	Accounts        []Account       `json:"accounts"`
	Transactions    []Transaction   `json:"transactions"`
	TotalDeposit    decimal.Decimal `json:"totalDeposit" swaggertype:"string"`
	TotalWithdrawal decimal.Decimal `json:"totalWithdrawal" swaggertype:"string"`
}
