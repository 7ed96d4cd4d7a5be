package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/corebank/backend/internal/models"
)

type CustomerService struct {
	db *sql.DB
}

func NewCustomerService(db *sql.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.CustomerSummary, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, username, COALESCE(email, '') FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []models.CustomerSummary{}
	for rows.Next() {
		var c models.CustomerSummary
		if err := rows.Scan(&c.ID, &c.Username, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	var c models.Customer
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(phone_number, ''), created_at
		FROM customers
		WHERE id = $1`, customerID).Scan(&c.ID, &c.Username, &c.FullName, &c.Email, &c.PhoneNumber, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError("Customer not found with id %d", customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}

	c.Roles, err = customerRoles(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCustomer removes the customer and everything it owns in one
// transaction: ledger entries, accounts, addresses, role links, customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete customer: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM customers WHERE id = $1 FOR UPDATE", customerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return NotFoundError("Customer not found with id %d", customerID)
	}
	if err != nil {
		return fmt.Errorf("lock customer: %w", err)
	}

	steps := []struct {
		name  string
		query string
	}{
		{"transactions", "DELETE FROM transactions WHERE account_id IN (SELECT id FROM accounts WHERE customer_id = $1)"},
		{"accounts", "DELETE FROM accounts WHERE customer_id = $1"},
		{"addresses", "DELETE FROM customer_addresses WHERE customer_id = $1"},
		{"roles", "DELETE FROM customer_roles WHERE customer_id = $1"},
		{"customer", "DELETE FROM customers WHERE id = $1"},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, customerID); err != nil {
			return fmt.Errorf("delete %s of customer %d: %w", step.name, customerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete customer: %w", err)
	}

	log.Printf("[CUSTOMER] Deleted customer %d with all owned records", customerID)
	return nil
}

func (s *CustomerService) AddAddress(ctx context.Context, customerID int64, req models.AddressRequest) (*models.Address, error) {
	address := &models.Address{
		CustomerID:   customerID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		AddressType:  strings.ToUpper(req.AddressType),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO customer_addresses (customer_id, address_line1, address_line2, city, state, postal_code, country, address_type)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE EXISTS (SELECT 1 FROM customers WHERE id = $1)
		RETURNING id`,
		address.CustomerID, address.AddressLine1, address.AddressLine2, address.City,
		address.State, address.PostalCode, address.Country, address.AddressType).Scan(&address.ID)
	if errors.Is(err, sql.ErrNoRows) || isForeignKeyViolation(err) {
		return nil, NotFoundError("Customer not found with id %d", customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	log.Printf("[CUSTOMER] Added %s address %d for customer %d", address.AddressType, address.ID, customerID)
	return address, nil
}

func (s *CustomerService) GetAddresses(ctx context.Context, customerID int64) ([]models.Address, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", customerID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, NotFoundError("Customer not found with id %d", customerID)
	}

	rows, err := s.db.QueryContext(ctx, addressSelect+" WHERE customer_id = $1 ORDER BY id", customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

const addressSelect = `
	SELECT id, customer_id, address_line1, COALESCE(address_line2, ''), COALESCE(city, ''),
		COALESCE(state, ''), COALESCE(postal_code, ''), COALESCE(country, ''), address_type
	FROM customer_addresses`

func scanAddress(rows *sql.Rows) (models.Address, error) {
	var a models.Address
	err := rows.Scan(&a.ID, &a.CustomerID, &a.AddressLine1, &a.AddressLine2, &a.City,
		&a.State, &a.PostalCode, &a.Country, &a.AddressType)
	if err != nil {
		return a, fmt.Errorf("scan address: %w", err)
	}
	return a, nil
}
