package handlers

import (
	"net/http"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/request"
	"github.com/jdevries/Banking-Insights-Backend/internal/api/response"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
	"github.com/jdevries/Banking-Insights-Backend/internal/validation"
)

// ReportHandler handles HTTP requests for report exports.
type ReportHandler struct {
	syncService   *service.SyncService
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler with the provided service
// dependencies.
func NewReportHandler(syncService *service.SyncService, reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		syncService:   syncService,
		reportService: reportService,
	}
}

// ExportReportResponse lists the report files written by an export.
type ExportReportResponse struct {
	Files []string `json:"files"`
}

// ExportReport handles POST requests to fetch a date range across all
// providers, analyze it, and write report files in the requested formats.
//
// Endpoint: POST /api/reports
// Request Body: ExportReportRequest (startDate, endDate, formats)
// Response: 201 Created with ExportReportResponse
// Error: 400 Bad Request if validation fails
// Error: 502 Bad Gateway if a provider fetch fails
// Error: 500 Internal Server Error if writing a report fails
func (h *ReportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ExportReportRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateExportReport(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	start, end, _ := validation.ValidateDateRange(req.StartDate, req.EndDate)

	analysis, err := h.syncService.SyncAndAnalyze(r.Context(), start, end)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, "failed to fetch transactions", err.Error())
		return
	}

	files, err := h.reportService.Export(analysis, req.Formats)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to write report", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, ExportReportResponse{Files: files})
}
