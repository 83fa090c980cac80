package handlers

import (
	"errors"
	"net/http"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/request"
	"github.com/jdevries/Banking-Insights-Backend/internal/api/response"
	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
	"github.com/jdevries/Banking-Insights-Backend/internal/validation"
)

// AnalysisHandler handles HTTP requests for the transaction analysis
// endpoints. It serves as the HTTP layer adapter, parsing requests and
// delegating pipeline work to the analysis and sync services.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	syncService     *service.SyncService
}

// NewAnalysisHandler creates a new AnalysisHandler with the provided service
// dependencies.
func NewAnalysisHandler(analysisService *service.AnalysisService, syncService *service.SyncService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		syncService:     syncService,
	}
}

// AnalyzeBatch handles POST requests to analyze a posted raw batch.
// Runs normalization, categorization, enrichment, aggregation, and insight
// detection over the posted transactions. Per-record normalization failures
// are reported inside the payload, never as a request failure.
//
// Endpoint: POST /api/analysis
// Request Body: AnalyzeBatchRequest (provider, transactions)
// Response: 200 OK with Analysis
// Error: 400 Bad Request if the body is invalid or the provider is unknown
func (h *AnalysisHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AnalyzeBatchRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAnalyzeBatch(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	analysis, err := h.analysisService.ProcessAndAnalyze(req.Provider, req.Transactions)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedProvider) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnsupportedProvider.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to analyze batch", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}

// AnalyzeRange handles GET requests to fetch all configured providers for a
// date range and analyze the combined batch.
//
// Endpoint: GET /api/analysis?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Response: 200 OK with Analysis
// Error: 400 Bad Request if the date range is invalid
// Error: 502 Bad Gateway if a provider fetch fails
func (h *AnalysisHandler) AnalyzeRange(w http.ResponseWriter, r *http.Request) {
	start, end, err := validation.ValidateDateRange(
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	analysis, err := h.syncService.SyncAndAnalyze(r.Context(), start, end)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToFetchTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}
