package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/corebank/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(15,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// LedgerService applies one movement to an account balance and appends the
// matching ledger entry inside a single database transaction.
type LedgerService struct {
	db  *sql.DB
	now func() time.Time
}

func NewLedgerService(db *sql.DB) *LedgerService {
	return &LedgerService{db: db, now: time.Now}
}

type lockedAccount struct {
	ID      int64
	Balance decimal.Decimal
}

// Post locks the account row, checks the movement against the current
// balance, then writes the new balance and the entry. Either both are
// committed or neither is.
func (l *LedgerService) Post(ctx context.Context, accountNumber, txType string, amount decimal.Decimal, description string) (*models.TransactionResult, error) {
	tx, err := l.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin ledger transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := l.lockAccount(ctx, tx, accountNumber)
	if err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal
	switch txType {
	case models.TransactionTypeDeposit:
		newBalance = account.Balance.Add(amount)
		if newBalance.GreaterThan(MaxAmount) {
			return nil, ValidationError("Deposit would exceed the maximum balance of %s", MaxAmount.StringFixed(2))
		}
	case models.TransactionTypeWithdrawal:
		if amount.GreaterThan(account.Balance) {
			return nil, InsufficientFundsError("Insufficient balance")
		}
		newBalance = account.Balance.Sub(amount)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", txType)
	}

	if err := l.updateBalance(ctx, tx, account.ID, newBalance); err != nil {
		return nil, err
	}

	postedAt := l.now().UTC()
	transactionID, err := l.appendEntry(ctx, tx, account.ID, txType, amount, postedAt, description)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger transaction: %w", err)
	}

	return &models.TransactionResult{
		AccountNumber:   accountNumber,
		Type:            txType,
		Amount:          amount,
		BalanceAfter:    newBalance,
		TransactionID:   transactionID,
		TransactionTime: postedAt,
		Description:     description,
	}, nil
}

func (l *LedgerService) lockAccount(ctx context.Context, tx *sql.Tx, accountNumber string) (*lockedAccount, error) {
	var account lockedAccount
	err := tx.QueryRowContext(ctx, `
		SELECT id, balance
		FROM accounts
		WHERE account_number = $1
		FOR UPDATE`, accountNumber).Scan(&account.ID, &account.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError("Account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("lock account: %w", err)
	}
	return &account, nil
}

func (l *LedgerService) updateBalance(ctx context.Context, tx *sql.Tx, accountID int64, balance decimal.Decimal) error {
	result, err := tx.ExecContext(ctx, "UPDATE accounts SET balance = $1 WHERE id = $2", balance, accountID)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected != 1 {
		return fmt.Errorf("update balance: account %d not updated", accountID)
	}
	return nil
}

func (l *LedgerService) appendEntry(ctx context.Context, tx *sql.Tx, accountID int64, txType string, amount decimal.Decimal, postedAt time.Time, description string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO transactions (account_id, type, amount, transaction_time, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		accountID, txType, amount, postedAt, description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("append ledger entry: %w", err)
	}
	return id, nil
}
