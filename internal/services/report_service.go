package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/corebank/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	db *sql.DB
}

func NewReportService(db *sql.DB) *ReportService {
	return &ReportService{db: db}
}

// MonthWindow returns [first instant of the month, first instant of the next month) in UTC.
func MonthWindow(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ValidationError("Month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, ValidationError("Year must be between 1 and 9999")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

// MonthlyReport builds one entry per customer, including customers with no
// activity in the month. All reads share one read-only snapshot.
func (s *ReportService) MonthlyReport(ctx context.Context, month, year int) ([]models.ReportEntry, error) {
	start, end, err := MonthWindow(month, year)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin report: %w", err)
	}
	defer tx.Rollback()

	entries, index, err := loadReportCustomers(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := loadReportAddresses(ctx, tx, entries, index); err != nil {
		return nil, err
	}
	if err := loadReportAccounts(ctx, tx, entries, index); err != nil {
		return nil, err
	}
	if err := loadReportTransactions(ctx, tx, entries, index, start, end); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit report: %w", err)
	}

	log.Printf("[REPORT] Generated %02d/%d report for %d customers", month, year, len(entries))
	return entries, nil
}

func loadReportCustomers(ctx context.Context, tx *sql.Tx) ([]models.ReportEntry, map[int64]int, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, username, COALESCE(email, '') FROM customers ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("report customers: %w", err)
	}
	defer rows.Close()

	entries := []models.ReportEntry{}
	index := make(map[int64]int)
	for rows.Next() {
		entry := models.ReportEntry{
			Addresses:       []models.Address{},
			Accounts:        []models.Account{},
			Transactions:    []models.Transaction{},
			TotalDeposit:    decimal.Zero,
			TotalWithdrawal: decimal.Zero,
		}
		if err := rows.Scan(&entry.CustomerID, &entry.CustomerName, &entry.Email); err != nil {
			return nil, nil, fmt.Errorf("scan report customer: %w", err)
		}
		index[entry.CustomerID] = len(entries)
		entries = append(entries, entry)
	}
	return entries, index, rows.Err()
}

func loadReportAddresses(ctx context.Context, tx *sql.Tx, entries []models.ReportEntry, index map[int64]int) error {
	rows, err := tx.QueryContext(ctx, addressSelect+" ORDER BY id")
	if err != nil {
		return fmt.Errorf("report addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return err
		}
		if i, ok := index[a.CustomerID]; ok {
			entries[i].Addresses = append(entries[i].Addresses, a)
		}
	}
	return rows.Err()
}

func loadReportAccounts(ctx context.Context, tx *sql.Tx, entries []models.ReportEntry, index map[int64]int) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, customer_id, account_number, account_type, balance, created_at
		FROM accounts
		ORDER BY id`)
	if err != nil {
		return fmt.Errorf("report accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.AccountNumber, &a.AccountType, &a.Balance, &a.CreatedAt); err != nil {
			return fmt.Errorf("scan report account: %w", err)
		}
		if i, ok := index[a.CustomerID]; ok {
			entries[i].Accounts = append(entries[i].Accounts, a)
		}
	}
	return rows.Err()
}

func loadReportTransactions(ctx context.Context, tx *sql.Tx, entries []models.ReportEntry, index map[int64]int, start, end time.Time) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT t.id, t.account_id, a.account_number, a.customer_id, t.type, t.amount, t.transaction_time, COALESCE(t.description, '')
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE t.transaction_time >= $1 AND t.transaction_time < $2
		ORDER BY t.id`, start, end)
	if err != nil {
		return fmt.Errorf("report transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Transaction
		var customerID int64
		if err := rows.Scan(&t.ID, &t.AccountID, &t.AccountNumber, &customerID, &t.Type, &t.Amount, &t.TransactionTime, &t.Description); err != nil {
			return fmt.Errorf("scan report transaction: %w", err)
		}

		i, ok := index[customerID]
		if !ok {
			continue
		}
		entry := &entries[i]
		entry.Transactions = append(entry.Transactions, t)
		switch t.Type {
		case models.TransactionTypeDeposit:
			entry.TotalDeposit = entry.TotalDeposit.Add(t.Amount)
		case models.TransactionTypeWithdrawal:
			entry.TotalWithdrawal = entry.TotalWithdrawal.Add(t.Amount)
		}
	}
	return rows.Err()
}
