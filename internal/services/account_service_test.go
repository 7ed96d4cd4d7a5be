package services

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customerExistsQuery = regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)")
	summaryColumns      = []string{"id", "account_number", "account_type", "balance", "customer_id", "full_name"}
)

func newTestAccountService(t *testing.T) (*AccountService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	service := NewAccountService(db)
	service.newAccountNumber = func() string { return "3f2a9c1e-7b4" }
	return service, mock
}

func TestGenerateAccountNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := generateAccountNumber()
		assert.Len(t, n, 12)
		seen[n] = true
	}
	// Uniqueness is only probabilistic; the database constraint is the guard.
	assert.Greater(t, len(seen), 90)
}

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with zero balance", func(t *testing.T) {
		service, mock := newTestAccountService(t)

		mock.ExpectQuery(customerExistsQuery).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs(1, "3f2a9c1e-7b4", "SAVINGS", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		account, err := service.CreateAccount(ctx, 1, "savings")
		require.NoError(t, err)
		assert.Equal(t, int64(5), account.ID)
		assert.Equal(t, "3f2a9c1e-7b4", account.AccountNumber)
		assert.Equal(t, "SAVINGS", account.AccountType)
		assert.Equal(t, "0.00", account.Balance.StringFixed(2))
		assert.False(t, account.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown account type", func(t *testing.T) {
		service, mock := newTestAccountService(t)

		_, err := service.CreateAccount(ctx, 1, "CHECKING")
		assert.True(t, errors.Is(err, ErrValidation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing customer", func(t *testing.T) {
		service, mock := newTestAccountService(t)

		mock.ExpectQuery(customerExistsQuery).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := service.CreateAccount(ctx, 99, "CURRENT")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("account number collision is a conflict", func(t *testing.T) {
		service, mock := newTestAccountService(t)

		mock.ExpectQuery(customerExistsQuery).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("INSERT INTO accounts").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := service.CreateAccount(ctx, 1, "CURRENT")
		assert.True(t, errors.Is(err, ErrConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("customer deleted concurrently", func(t *testing.T) {
		service, mock := newTestAccountService(t)

		mock.ExpectQuery(customerExistsQuery).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("INSERT INTO accounts").
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := service.CreateAccount(ctx, 1, "CURRENT")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestAccountService_GetBalance(t *testing.T) {
	ctx := context.Background()
	balanceQuery := regexp.QuoteMeta("SELECT balance FROM accounts WHERE account_number = $1")

	t.Run("found", func(t *testing.T) {
		service, mock := newTestAccountService(t)
		mock.ExpectQuery(balanceQuery).
			WithArgs("acc-1").
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("125.50"))

		balance, err := service.GetBalance(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, "125.50", balance.StringFixed(2))
	})

	t.Run("not found", func(t *testing.T) {
		service, mock := newTestAccountService(t)
		mock.ExpectQuery(balanceQuery).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := service.GetBalance(ctx, "missing")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestAccountService_ListAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("all accounts with owner", func(t *testing.T) {
		service, mock := newTestAccountService(t)
		mock.ExpectQuery("FROM accounts a JOIN customers c").
			WillReturnRows(sqlmock.NewRows(summaryColumns).
				AddRow(1, "acc-1", "SAVINGS", "60.00", 1, "Alice Smith").
				AddRow(2, "acc-2", "CURRENT", "0.00", 2, ""))

		accounts, err := service.ListAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "Alice Smith", accounts[0].CustomerName)
		assert.Equal(t, int64(2), accounts[1].CustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("paginated", func(t *testing.T) {
		service, mock := newTestAccountService(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM accounts")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
			WithArgs(2, 2).
			WillReturnRows(sqlmock.NewRows(summaryColumns).
				AddRow(3, "acc-3", "SAVINGS", "1.00", 1, "Alice Smith"))

		page, err := service.ListAccountsPage(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.Size)
		assert.Equal(t, int64(3), page.TotalElements)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "acc-3", page.Content[0].AccountNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects bad paging", func(t *testing.T) {
		service, mock := newTestAccountService(t)

		_, err := service.ListAccountsPage(ctx, -1, 10)
		assert.True(t, errors.Is(err, ErrValidation))
		_, err = service.ListAccountsPage(ctx, 0, 0)
		assert.True(t, errors.Is(err, ErrValidation))
		_, err = service.ListAccountsPage(ctx, 0, MaxPageSize+1)
		assert.True(t, errors.Is(err, ErrValidation))
		_, err = service.ListAccountsPage(ctx, math.MaxInt/50, 100)
		assert.True(t, errors.Is(err, ErrValidation))
		_, err = service.ListAccountsPage(ctx, math.MaxInt32/10+1, 10)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountService_Exists(t *testing.T) {
	service, mock := newTestAccountService(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)")).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := service.Exists(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.True(t, exists)
}
