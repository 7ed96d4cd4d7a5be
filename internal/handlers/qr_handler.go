package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type qrService interface {
	AccountQRCode(ctx context.Context, accountNumber string) ([]byte, error)
}

type QRHandler struct {
	service qrService
}

func NewQRHandler(service qrService) *QRHandler {
	return &QRHandler{service: service}
}

// AccountQR renders the account number as a QR code
// @Summary Account QR code
// @Description PNG QR code encoding the account number, for sharing deposit details
// @Tags accounts
// @Produce png
// @Security BearerAuth
// @Param accountNumber path string true "Account number"
// @Success 200 {file} binary
// @Failure 400 {object} services.Response
// @Router /accounts/qr/{accountNumber} [get]
func (h *QRHandler) AccountQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.AccountQRCode(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		respondError(w, r, "Failed to generate QR code", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
