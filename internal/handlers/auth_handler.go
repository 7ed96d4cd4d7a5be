package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/corebank/backend/internal/models"
	"github.com/corebank/backend/internal/services"
)

type authService interface {
	Register(ctx context.Context, req models.RegisterRequest) (string, string, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
}

type AuthHandler struct {
	service   authService
	validator *services.ValidationHelper
}

func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// Register creates a customer account
// @Summary Register a customer
// @Description Register a new customer. Role defaults to CUSTOMER.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} services.Response{data=string}
// @Failure 400 {object} services.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AUTH] Registration attempt from IP: %s", r.RemoteAddr)

	var req models.RegisterRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		respondError(w, r, "Registration failed", err)
		return
	}

	username, role, err := h.service.Register(r.Context(), req)
	if err != nil {
		respondError(w, r, "Registration failed", err)
		return
	}

	services.SendResponse(w, http.StatusCreated, fmt.Sprintf("User registered successfully with role %s", role), username)
}

// Login authenticates a customer
// @Summary Login
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} services.Response{data=models.LoginResponse}
// @Failure 400 {object} services.Response
// @Failure 401 {object} services.Response
// @Failure 429 {object} services.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		respondError(w, r, "Login failed", err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, "Login failed", err)
		return
	}

	services.SendResponse(w, http.StatusOK, "Login successful", resp)
}

// Roles lists the known roles
// @Summary List roles
// @Tags auth
// @Produce json
// @Success 200 {object} services.Response{data=[]models.Role}
// @Router /auth/roles/all [get]
func (h *AuthHandler) Roles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		respondError(w, r, "Failed to fetch roles", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Roles fetched successfully", roles)
}
