package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/valbrand/crm-backend/internal/http/response"
)

const APIKeyHeader = "X-API-Key"

// APIKey rejects requests whose X-API-Key header does not match expected.
// The comparison is constant-time so response latency does not leak how
// much of the key matched.
func APIKey(expected string) func(http.Handler) http.Handler {
	want := []byte(expected)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(APIKeyHeader))
			if len(got) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				response.Error(w, http.StatusForbidden, "Could not validate API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
