package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/observability"
)

// AuditRecorder persists one audit entry per intercepted request.
type AuditRecorder interface {
	Record(entry *domain.AuditLog) error
}

// Paths for which no audit record is written. "/" is matched exactly,
// the rest by prefix.
var auditExcludedPrefixes = []string{"/health", "/docs", "/openapi.json", "/.well-known"}

const maxAuditBodyBytes = 64 * 1024

// Audit records successful API requests after the handler has responded.
// A request produces a record only when it carried an API key and the
// handler answered with a status below 400. Persistence failures are
// logged and counted but never surface to the client.
func Audit(recorder AuditRecorder, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auditExcluded(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now().UTC()
			apiKey := r.Header.Get(APIKeyHeader)
			body := captureBody(r)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusBadRequest || apiKey == "" {
				return
			}

			entry := &domain.AuditLog{
				Endpoint:    r.URL.Path,
				Method:      r.Method,
				APIKey:      apiKey,
				RequestBody: body,
				QueryParams: queryParamsJSON(r.URL.Query()),
				UserAgent:   optional(r.UserAgent()),
				IPAddress:   optional(clientIP(r)),
				StatusCode:  rec.status,
				Timestamp:   start,
			}
			if err := recorder.Record(entry); err != nil {
				observability.RecordAuditPersistence("error")
				logger.ErrorContext(r.Context(), "audit record failed",
					"endpoint", entry.Endpoint, "method", entry.Method, "error", err)
				return
			}
			observability.RecordAuditPersistence("success")
			observability.Audit(r, "request_audited", "status_code", rec.status)
		})
	}
}

func auditExcluded(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range auditExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// captureBody reads the request body for mutating methods and restores it so
// the handler still sees the full stream. JSON bodies are compacted; anything
// else is stored raw.
func captureBody(r *http.Request) *string {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil
	}
	if r.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBodyBytes+1))
	// The handler must still see the whole stream, including any tail
	// beyond the capture limit.
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(raw), r.Body), r.Body}
	if err != nil || len(raw) == 0 || len(raw) > maxAuditBodyBytes {
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err == nil {
		s := compact.String()
		return &s
	}
	s := string(raw)
	return &s
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// queryParamsJSON stores the decoded parameters as a JSON object rather
// than the raw query string; repeated keys keep the last value.
func queryParamsJSON(q url.Values) *string {
	if len(q) == 0 {
		return nil
	}
	params := make(map[string]string, len(q))
	for key, vals := range q {
		if len(vals) == 0 {
			params[key] = ""
			continue
		}
		params[key] = vals[len(vals)-1]
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
