package handlers

import (
	"context"
	"net/http"

	"github.com/corebank/backend/internal/models"
	"github.com/corebank/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type accountService interface {
	CreateAccount(ctx context.Context, customerID int64, accountType string) (*models.Account, error)
	GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error)
	ListAccounts(ctx context.Context) ([]models.AccountSummary, error)
	ListAccountsPage(ctx context.Context, page, size int) (models.Page[models.AccountSummary], error)
}

type AccountHandler struct {
	service accountService
}

func NewAccountHandler(service accountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount opens an account for a customer
// @Summary Create account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param accountType query string true "SAVINGS or CURRENT"
// @Success 201 {object} services.Response{data=models.Account}
// @Failure 400 {object} services.Response
// @Failure 403 {object} services.Response
// @Router /accounts/create/{customerId} [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, r, "Account creation failed", err)
		return
	}

	account, err := h.service.CreateAccount(r.Context(), customerID, r.URL.Query().Get("accountType"))
	if err != nil {
		respondError(w, r, "Account creation failed", err)
		return
	}

	services.SendResponse(w, http.StatusCreated, "Account created successfully", account)
}

// GetBalance returns the current balance
// @Summary Account balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param accountNumber path string true "Account number"
// @Success 200 {object} services.Response{data=string}
// @Failure 400 {object} services.Response
// @Router /accounts/balance/{accountNumber} [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.GetBalance(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		respondError(w, r, "Failed to fetch balance", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Balance fetched successfully", balance)
}

// ListAccounts returns every account with its owner
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Response{data=[]models.AccountSummary}
// @Router /accounts/all [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		respondError(w, r, "Failed to fetch accounts", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Accounts fetched successfully", accounts)
}

// ListAccountsPage returns one page of accounts
// @Summary List accounts with pagination
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} services.Response
// @Failure 400 {object} services.Response
// @Router /accounts/withPagination [get]
func (h *AccountHandler) ListAccountsPage(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		respondError(w, r, "Failed to fetch accounts", err)
		return
	}
	size, err := queryInt(r, "size", services.DefaultPageSize)
	if err != nil {
		respondError(w, r, "Failed to fetch accounts", err)
		return
	}

	result, err := h.service.ListAccountsPage(r.Context(), page, size)
	if err != nil {
		respondError(w, r, "Failed to fetch accounts", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Accounts fetched successfully", result)
}
