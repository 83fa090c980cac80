package handlers

import (
	"net/http"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/response"
	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
	"github.com/jdevries/Banking-Insights-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for provider transaction
// endpoints. It fetches raw batches from a bank API and returns processed
// canonical transactions.
type TransactionHandler struct {
	syncService *service.SyncService
}

// NewTransactionHandler creates a new TransactionHandler with the provided
// service dependency.
func NewTransactionHandler(syncService *service.SyncService) *TransactionHandler {
	return &TransactionHandler{
		syncService: syncService,
	}
}

// TransactionsResponse wraps a processed batch together with any records the
// normalizer had to drop.
type TransactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Errors       []model.RecordError `json:"errors,omitempty"`
}

// FetchTransactions handles GET requests to fetch and process one provider's
// transactions for a date range. The provider query parameter is validated
// by middleware.
//
// Endpoint: GET /api/transactions?provider=wise&start_date=...&end_date=...
// Response: 200 OK with TransactionsResponse
// Error: 400 Bad Request if the date range is invalid
// Error: 502 Bad Gateway if the provider fetch fails
func (h *TransactionHandler) FetchTransactions(w http.ResponseWriter, r *http.Request) {
	provider := r.URL.Query().Get("provider")

	start, end, err := validation.ValidateDateRange(
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transactions, recordErrors, err := h.syncService.FetchTransactions(r.Context(), provider, start, end)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToFetchTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, TransactionsResponse{
		Transactions: transactions,
		Errors:       recordErrors,
	})
}
