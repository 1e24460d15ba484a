package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as the response body with the given status. Payloads are
// written bare, without an envelope, so that endpoints like forgot-password
// can return byte-identical bodies regardless of outcome.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error writes an error body of the form {"detail": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"detail": message})
}
