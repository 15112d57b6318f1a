package handler

import "net/http"

const apiVersion = "1.0.0"

// RegisterHealthRoutes serves the liveness endpoints. These return raw
// payloads rather than the envelope, matching what the frontend probes.
func RegisterHealthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Employee Management API ishlayapti",
			"status":  "OK",
			"version": apiVersion,
		})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
}
