package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same {"detail": ...} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail}) //nolint:errcheck
}
