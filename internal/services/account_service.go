package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/corebank/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	accountNumberLength = 12
	DefaultPageSize     = 10
	MaxPageSize         = 100
)

type AccountService struct {
	db               *sql.DB
	newAccountNumber func() string
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{
		db:               db,
		newAccountNumber: generateAccountNumber,
	}
}

// generateAccountNumber takes the first 12 characters of a random UUID.
// There is no retry on collision; the UNIQUE constraint on
// accounts.account_number is the only guard.
func generateAccountNumber() string {
	return uuid.New().String()[:accountNumberLength]
}

func (s *AccountService) CreateAccount(ctx context.Context, customerID int64, accountType string) (*models.Account, error) {
	accountType = strings.ToUpper(strings.TrimSpace(accountType))
	if accountType != models.AccountTypeSavings && accountType != models.AccountTypeCurrent {
		return nil, ValidationError("Account type must be SAVINGS or CURRENT")
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", customerID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, NotFoundError("Customer not found with id %d", customerID)
	}

	account := &models.Account{
		CustomerID:    customerID,
		AccountNumber: s.newAccountNumber(),
		AccountType:   accountType,
		Balance:       decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (customer_id, account_number, account_type, balance, created_at)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING id`,
		account.CustomerID, account.AccountNumber, account.AccountType, account.CreatedAt).Scan(&account.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, ConflictError("Account number %s already exists", account.AccountNumber)
		case isForeignKeyViolation(err):
			return nil, NotFoundError("Customer not found with id %d", customerID)
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	log.Printf("[ACCOUNT] Created %s account %s for customer %d", account.AccountType, account.AccountNumber, customerID)
	return account, nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.db.QueryRowContext(ctx, "SELECT balance FROM accounts WHERE account_number = $1", accountNumber).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, NotFoundError("Account not found")
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("load balance: %w", err)
	}
	return balance, nil
}

func (s *AccountService) Exists(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)", accountNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account: %w", err)
	}
	return exists, nil
}

const accountSummarySelect = `
	SELECT a.id, a.account_number, a.account_type, a.balance, c.id, COALESCE(c.full_name, '')
	FROM accounts a
	JOIN customers c ON c.id = a.customer_id
	ORDER BY a.id`

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	rows, err := s.db.QueryContext(ctx, accountSummarySelect)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return scanAccountSummaries(rows)
}

// ListAccountsPage returns one zero-based page ordered by account id.
func (s *AccountService) ListAccountsPage(ctx context.Context, page, size int) (models.Page[models.AccountSummary], error) {
	if page < 0 {
		return models.Page[models.AccountSummary]{}, ValidationError("Page must not be negative")
	}
	if size < 1 || size > MaxPageSize {
		return models.Page[models.AccountSummary]{}, ValidationError("Size must be between 1 and %d", MaxPageSize)
	}
	// OFFSET is bound as a Postgres integer
	if page > math.MaxInt32/size {
		return models.Page[models.AccountSummary]{}, ValidationError("Page is out of range")
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&total); err != nil {
		return models.Page[models.AccountSummary]{}, fmt.Errorf("count accounts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, accountSummarySelect+" LIMIT $1 OFFSET $2", size, page*size)
	if err != nil {
		return models.Page[models.AccountSummary]{}, fmt.Errorf("list accounts page: %w", err)
	}
	content, err := scanAccountSummaries(rows)
	if err != nil {
		return models.Page[models.AccountSummary]{}, err
	}

	return models.NewPage(content, page, size, total), nil
}

func scanAccountSummaries(rows *sql.Rows) ([]models.AccountSummary, error) {
	defer rows.Close()

	accounts := []models.AccountSummary{}
	for rows.Next() {
		var a models.AccountSummary
		if err := rows.Scan(&a.ID, &a.AccountNumber, &a.AccountType, &a.Balance, &a.CustomerID, &a.CustomerName); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
