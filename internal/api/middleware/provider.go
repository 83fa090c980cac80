package middleware

import (
	"net/http"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/response"
)

// ValidateProviderMiddleware validates that the provider query parameter is
// present and names a configured provider. Returns 400 Bad Request otherwise.
// supported reports whether a provider tag is configured.
//
// Example usage in router:
//
//	r.With(middleware.ValidateProviderMiddleware(syncService.Supports)).
//	    Get("/", transactionHandler.FetchTransactions)
func ValidateProviderMiddleware(supported func(string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provider := r.URL.Query().Get("provider")

			if provider == "" {
				response.RespondError(w, http.StatusBadRequest, "provider is required", "")
				return
			}

			if !supported(provider) {
				response.RespondError(w, http.StatusBadRequest, "unsupported provider", provider)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
