// Package handler maps HTTP requests onto the entity services and renders
// the uniform {success, data, message} envelope.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"salom-api/internal/i18n"
	"salom-api/internal/service"
)

// Response is the uniform envelope for every API payload. Error responses
// keep the same shape and add a stable machine-readable code.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

// respondData renders a success envelope; messageID may be empty for plain
// reads that carry no message.
func respondData(w http.ResponseWriter, r *http.Request, data any, messageID string) {
	resp := Response{Success: true, Data: data}
	if messageID != "" {
		resp.Message = i18n.T(r.Context(), messageID)
	}
	writeJSON(w, http.StatusOK, resp)
}

// respondError maps a service error onto an HTTP status and localizes its
// message. Anything outside the domain taxonomy is a 500.
func respondError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		if svcErr.Kind == service.KindNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, Response{
			Success: false,
			Message: i18n.T(r.Context(), svcErr.MessageID),
			Code:    string(svcErr.Kind),
		})
		return
	}

	log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Message: i18n.T(r.Context(), "server.error"),
	})
}

// decodeBody decodes a JSON request body, reporting a localized 400 on
// malformed input. It returns false when the response has been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: i18n.T(r.Context(), "request.invalid_body"),
			Code:    string(service.KindInvalid),
		})
		return false
	}
	return true
}
