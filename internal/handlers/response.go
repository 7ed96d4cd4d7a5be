package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/corebank/backend/internal/services"
	"github.com/go-chi/chi/v5"
)

const internalErrorMessage = "Something went wrong"

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes domain errors with their message prefixed by action.
// Anything else is logged and masked.
func respondError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var domainErr *services.DomainError
	if !errors.As(err, &domainErr) {
		log.Printf("[HTTP] %s %s: %s: %v", r.Method, r.URL.Path, action, err)
		services.SendErrorResponse(w, internalErrorMessage, http.StatusInternalServerError, nil)
		return
	}

	message := domainErr.Message
	if action != "" {
		message = action + ": " + message
	}
	services.SendErrorResponse(w, message, statusFor(err), err)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, services.ValidationError("Invalid %s", name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, services.ValidationError("Invalid %s: %q", name, raw)
	}
	return v, nil
}

func requiredQueryInt(r *http.Request, name string) (int, error) {
	if r.URL.Query().Get(name) == "" {
		return 0, services.ValidationError("Missing required parameter %s", name)
	}
	return queryInt(r, name, 0)
}
