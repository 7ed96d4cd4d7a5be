package handlers

import (
	"context"
	"net/http"

	"github.com/corebank/backend/internal/models"
	"github.com/corebank/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type transactionService interface {
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*models.TransactionResult, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*models.TransactionResult, error)
	History(ctx context.Context, accountNumber string) ([]models.Transaction, error)
}

type TransactionHandler struct {
	service   transactionService
	validator *services.ValidationHelper
}

func NewTransactionHandler(service transactionService) *TransactionHandler {
	return &TransactionHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// Deposit credits an account
// @Summary Deposit
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TransactionRequest true "Deposit request"
// @Success 200 {object} services.Response{data=models.TransactionResult}
// @Failure 400 {object} services.Response
// @Router /transactions/deposit [post]
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		respondError(w, r, "Deposit failed", err)
		return
	}

	result, err := h.service.Deposit(r.Context(), req.AccountNumber, req.Amount, req.Description)
	if err != nil {
		respondError(w, r, "Deposit failed", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Deposit successful", result)
}

// Withdraw debits an account
// @Summary Withdraw
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TransactionRequest true "Withdrawal request"
// @Success 200 {object} services.Response{data=models.TransactionResult}
// @Failure 400 {object} services.Response
// @Router /transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		respondError(w, r, "Withdrawal failed", err)
		return
	}

	result, err := h.service.Withdraw(r.Context(), req.AccountNumber, req.Amount, req.Description)
	if err != nil {
		respondError(w, r, "Withdrawal failed", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Withdrawal successful", result)
}

// History lists an account's transactions
// @Summary Transaction history
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param accountNumber path string true "Account number"
// @Success 200 {object} services.Response{data=[]models.Transaction}
// @Failure 400 {object} services.Response
// @Router /transactions/history/{accountNumber} [get]
func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.History(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		respondError(w, r, "Failed to fetch transaction history", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Transaction history fetched successfully", history)
}
