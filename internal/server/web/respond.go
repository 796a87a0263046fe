package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// respondJSON writes payload as a JSON response with the given status code.
func (s *Server) respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error(context.Background(), "failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		s.logger.Error(context.Background(), "failed to write HTTP response", "error", err)
	}
}

// respondError writes a JSON error body. No internal detail is exposed.
func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respondJSON(w, code, map[string]string{"error": message})
}

// isoTime serializes a timestamp the way clients expect: an ISO-8601 string,
// or null for the zero value.
func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
