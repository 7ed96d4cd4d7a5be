package handlers

import (
	"context"
	"net/http"

	"github.com/corebank/backend/internal/models"
	"github.com/corebank/backend/internal/services"
)

type customerService interface {
	ListCustomers(ctx context.Context) ([]models.CustomerSummary, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	AddAddress(ctx context.Context, customerID int64, req models.AddressRequest) (*models.Address, error)
	GetAddresses(ctx context.Context, customerID int64) ([]models.Address, error)
}

type CustomerHandler struct {
	service   customerService
	validator *services.ValidationHelper
}

func NewCustomerHandler(service customerService) *CustomerHandler {
	return &CustomerHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// ListCustomers
// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Response{data=[]models.CustomerSummary}
// @Router /customers/all [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respondError(w, r, "Failed to fetch customers", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Customers fetched successfully", customers)
}

// GetCustomer
// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Success 200 {object} services.Response{data=models.Customer}
// @Failure 400 {object} services.Response
// @Router /customers/{customerId} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, r, "Failed to fetch customer", err)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, r, "Failed to fetch customer", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Customer fetched successfully", customer)
}

// DeleteCustomer removes a customer with its accounts, ledger and addresses
// @Summary Delete customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Success 200 {object} services.Response
// @Failure 400 {object} services.Response
// @Router /customers/{customerId} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, r, "Failed to delete customer", err)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		respondError(w, r, "Failed to delete customer", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Customer deleted successfully", nil)
}

// AddAddress
// @Summary Add address
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param request body models.AddressRequest true "Address"
// @Success 201 {object} services.Response{data=models.Address}
// @Failure 400 {object} services.Response
// @Router /customers/{customerId}/addAddress [post]
func (h *CustomerHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, r, "Failed to add address", err)
		return
	}

	var req models.AddressRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		respondError(w, r, "Failed to add address", err)
		return
	}

	address, err := h.service.AddAddress(r.Context(), customerID, req)
	if err != nil {
		respondError(w, r, "Failed to add address", err)
		return
	}
	services.SendResponse(w, http.StatusCreated, "Address added successfully", address)
}

// GetAddresses
// @Summary List addresses
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Success 200 {object} services.Response{data=[]models.Address}
// @Failure 400 {object} services.Response
// @Router /customers/{customerId}/getAddresses [get]
func (h *CustomerHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, r, "Failed to fetch addresses", err)
		return
	}

	addresses, err := h.service.GetAddresses(r.Context(), customerID)
	if err != nil {
		respondError(w, r, "Failed to fetch addresses", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Addresses fetched successfully", addresses)
}
