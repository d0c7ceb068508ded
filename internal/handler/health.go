package handler

import "net/http"

// Health handles GET /healthz.
// It reports liveness only; no dependency checks.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
