package observability

import (
	"log/slog"
	"net/http"
	"strings"
)

// Audit emits the structured log line that accompanies a persisted audit
// record. Each line carries the CRM route group so log queries can slice
// traffic by area (auth, audit, clients, proyectos, ...) without parsing
// paths.
func Audit(r *http.Request, event string, attrs ...any) {
	base := []any{
		"event", event,
		"method", r.Method,
		"path", r.URL.Path,
		"route_group", RouteGroup(r.URL.Path),
		"request_id", r.Header.Get("X-Request-Id"),
	}
	base = append(base, attrs...)
	slog.InfoContext(r.Context(), "audit", base...)
}

// RouteGroup reduces a request path to its first segment, or "root" for "/".
func RouteGroup(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}
