package handlers

import (
	"context"
	"net/http"

	"github.com/corebank/backend/internal/models"
	"github.com/corebank/backend/internal/services"
)

type reportService interface {
	MonthlyReport(ctx context.Context, month, year int) ([]models.ReportEntry, error)
}

type ReportHandler struct {
	service reportService
}

func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GenerateReport builds the monthly per-customer report
// @Summary Monthly transaction report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} services.Response{data=[]models.ReportEntry}
// @Failure 400 {object} services.Response
// @Router /reports/generate-report [get]
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	month, err := requiredQueryInt(r, "month")
	if err != nil {
		respondError(w, r, "Failed to generate report", err)
		return
	}
	year, err := requiredQueryInt(r, "year")
	if err != nil {
		respondError(w, r, "Failed to generate report", err)
		return
	}

	report, err := h.service.MonthlyReport(r.Context(), month, year)
	if err != nil {
		respondError(w, r, "Failed to generate report", err)
		return
	}
	services.SendResponse(w, http.StatusOK, "Monthly transaction report fetched successfully", report)
}
