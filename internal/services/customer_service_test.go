package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/corebank/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressColumns = []string{"id", "customer_id", "address_line1", "address_line2", "city", "state", "postal_code", "country", "address_type"}

func newTestCustomerService(t *testing.T) (*CustomerService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCustomerService(db), mock
}

func TestCustomerService_ListCustomers(t *testing.T) {
	service, mock := newTestCustomerService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, COALESCE(email, '') FROM customers ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "alice", "alice@example.com").
			AddRow(2, "bob", ""))

	customers, err := service.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.CustomerSummary{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: ""},
	}, customers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerService_GetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("with roles", func(t *testing.T) {
		service, mock := newTestCustomerService(t)
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		mock.ExpectQuery("FROM customers WHERE id = \\$1").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "email", "phone_number", "created_at"}).
				AddRow(1, "alice", "Alice Smith", "alice@example.com", "+15550100", created))
		mock.ExpectQuery("SELECT r.name FROM roles r").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("ADMIN").AddRow("CUSTOMER"))

		customer, err := service.GetCustomer(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", customer.Username)
		assert.Equal(t, created, customer.CreatedAt)
		assert.Equal(t, []string{"ADMIN", "CUSTOMER"}, customer.Roles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		service, mock := newTestCustomerService(t)
		mock.ExpectQuery("FROM customers WHERE id = \\$1").
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.GetCustomer(ctx, 42)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes owned records before the customer", func(t *testing.T) {
		service, mock := newTestCustomerService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM customers WHERE id = $1 FOR UPDATE")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE account_id IN")).
			WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE customer_id = $1")).
			WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customer_addresses WHERE customer_id = $1")).
			WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customer_roles WHERE customer_id = $1")).
			WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers WHERE id = $1")).
			WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, service.DeleteCustomer(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure part way rolls everything back", func(t *testing.T) {
		service, mock := newTestCustomerService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM customers WHERE id = $1 FOR UPDATE")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE account_id IN")).
			WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE customer_id = $1")).
			WithArgs(1).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		err := service.DeleteCustomer(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "delete accounts")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		service, mock := newTestCustomerService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM customers WHERE id = $1 FOR UPDATE")).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := service.DeleteCustomer(ctx, 9)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomerService_Addresses(t *testing.T) {
	ctx := context.Background()
	req := models.AddressRequest{
		AddressLine1: "1 Main St",
		City:         "Springfield",
		Country:      "US",
		AddressType:  "HOME",
	}

	t.Run("add", func(t *testing.T) {
		service, mock := newTestCustomerService(t)
		mock.ExpectQuery("INSERT INTO customer_addresses").
			WithArgs(1, "1 Main St", "", "Springfield", "", "", "US", "HOME").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		address, err := service.AddAddress(ctx, 1, req)
		require.NoError(t, err)
		assert.Equal(t, int64(4), address.ID)
		assert.Equal(t, "HOME", address.AddressType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("add for missing customer", func(t *testing.T) {
		service, mock := newTestCustomerService(t)
		mock.ExpectQuery("INSERT INTO customer_addresses").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.AddAddress(ctx, 9, req)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list", func(t *testing.T) {
		service, mock := newTestCustomerService(t)
		mock.ExpectQuery(customerExistsQuery).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("FROM customer_addresses WHERE customer_id = \\$1").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(addressColumns).
				AddRow(4, 1, "1 Main St", "", "Springfield", "", "", "US", "HOME").
				AddRow(5, 1, "2 Side St", "Floor 3", "Springfield", "", "", "US", "OFFICE"))

		addresses, err := service.GetAddresses(ctx, 1)
		require.NoError(t, err)
		require.Len(t, addresses, 2)
		assert.Equal(t, "OFFICE", addresses[1].AddressType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list for missing customer", func(t *testing.T) {
		service, mock := newTestCustomerService(t)
		mock.ExpectQuery(customerExistsQuery).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := service.GetAddresses(ctx, 9)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
