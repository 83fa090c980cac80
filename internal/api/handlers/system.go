package handlers

import (
	"net/http"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/response"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	syncService *service.SyncService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(syncService *service.SyncService) *SystemHandler {
	return &SystemHandler{
		syncService: syncService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string   `json:"status"`
	Providers []string `json:"providers"`
}

// Health reports service status and the configured provider tags.
// The pipeline itself is stateless, so health is simply liveness plus
// configuration.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with HealthResponse
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Providers: h.syncService.Providers(),
	})
}
