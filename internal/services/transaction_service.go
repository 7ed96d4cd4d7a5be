package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/corebank/backend/internal/audit"
	"github.com/corebank/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	db     *sql.DB
	ledger *LedgerService
	audit  *audit.AuditLogger
}

func NewTransactionService(db *sql.DB, ledger *LedgerService, auditLogger *audit.AuditLogger) *TransactionService {
	return &TransactionService{
		db:     db,
		ledger: ledger,
		audit:  auditLogger,
	}
}

// ValidateAmount accepts strictly positive amounts with at most two decimal
// places that fit in NUMERIC(15,2).
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ValidationError("Amount must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(2)) {
		return ValidationError("Amount must have at most two decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return ValidationError("Amount must not exceed %s", MaxAmount.StringFixed(2))
	}
	return nil
}

func (s *TransactionService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*models.TransactionResult, error) {
	return s.post(ctx, accountNumber, models.TransactionTypeDeposit, amount, description)
}

func (s *TransactionService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*models.TransactionResult, error) {
	return s.post(ctx, accountNumber, models.TransactionTypeWithdrawal, amount, description)
}

func (s *TransactionService) post(ctx context.Context, accountNumber, txType string, amount decimal.Decimal, description string) (*models.TransactionResult, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	result, err := s.ledger.Post(ctx, accountNumber, txType, amount, description)
	if err != nil {
		var domainErr *DomainError
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			log.Printf("[LEDGER] %s rejected for %s: %v", txType, accountNumber, err)
			s.audit.LogRejected(txType, accountNumber, amount, err.Error())
		case errors.As(err, &domainErr):
			log.Printf("[LEDGER] %s refused for %s: %v", txType, accountNumber, err)
		default:
			log.Printf("[LEDGER] %s failed for %s: %v", txType, accountNumber, err)
			s.audit.LogError(txType, accountNumber, err)
		}
		return nil, err
	}

	log.Printf("[LEDGER] %s of %s on %s committed, balance %s", txType, amount.StringFixed(2), accountNumber, result.BalanceAfter.StringFixed(2))
	s.audit.LogMovement(txType, accountNumber, result.TransactionID, amount, result.BalanceAfter)
	return result, nil
}

// History returns the account's ledger entries in insertion order.
func (s *TransactionService) History(ctx context.Context, accountNumber string) ([]models.Transaction, error) {
	var accountID int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM accounts WHERE account_number = $1", accountNumber).Scan(&accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError("Account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, amount, transaction_time, COALESCE(description, '')
		FROM transactions
		WHERE account_id = $1
		ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	history := []models.Transaction{}
	for rows.Next() {
		t := models.Transaction{AccountID: accountID, AccountNumber: accountNumber}
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.TransactionTime, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		history = append(history, t)
	}
	return history, rows.Err()
}
