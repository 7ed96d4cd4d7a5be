package handlers

import (
	"context"

	"github.com/corebank/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (string, string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) ListRoles(ctx context.Context) ([]models.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]models.Role)
	return roles, args.Error(1)
}

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, customerID int64, accountType string) (*models.Account, error) {
	args := m.Called(ctx, customerID, accountType)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *mockAccountService) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]models.AccountSummary)
	return accounts, args.Error(1)
}

func (m *mockAccountService) ListAccountsPage(ctx context.Context, page, size int) (models.Page[models.AccountSummary], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(models.Page[models.AccountSummary]), args.Error(1)
}

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*models.TransactionResult, error) {
	args := m.Called(ctx, accountNumber, amount.String(), description)
	result, _ := args.Get(0).(*models.TransactionResult)
	return result, args.Error(1)
}

func (m *mockTransactionService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*models.TransactionResult, error) {
	args := m.Called(ctx, accountNumber, amount.String(), description)
	result, _ := args.Get(0).(*models.TransactionResult)
	return result, args.Error(1)
}

func (m *mockTransactionService) History(ctx context.Context, accountNumber string) ([]models.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	history, _ := args.Get(0).([]models.Transaction)
	return history, args.Error(1)
}

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) ListCustomers(ctx context.Context) ([]models.CustomerSummary, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]models.CustomerSummary)
	return customers, args.Error(1)
}

func (m *mockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	args := m.Called(ctx, customerID)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return m.Called(ctx, customerID).Error(0)
}

func (m *mockCustomerService) AddAddress(ctx context.Context, customerID int64, req models.AddressRequest) (*models.Address, error) {
	args := m.Called(ctx, customerID, req)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *mockCustomerService) GetAddresses(ctx context.Context, customerID int64) ([]models.Address, error) {
	args := m.Called(ctx, customerID)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) MonthlyReport(ctx context.Context, month, year int) ([]models.ReportEntry, error) {
	args := m.Called(ctx, month, year)
	report, _ := args.Get(0).([]models.ReportEntry)
	return report, args.Error(1)
}

type mockQRService struct {
	mock.Mock
}

func (m *mockQRService) AccountQRCode(ctx context.Context, accountNumber string) ([]byte, error) {
	args := m.Called(ctx, accountNumber)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}
