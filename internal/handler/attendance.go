package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"salom-api/internal/i18n"
	"salom-api/internal/model"
	"salom-api/internal/service"
)

type AttendanceHandler struct {
	svc   *service.AttendanceService
	stats *service.StatisticsService
	log   *zap.Logger
}

func NewAttendanceHandler(svc *service.AttendanceService, stats *service.StatisticsService, log *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, stats: stats, log: log}
}

func (h *AttendanceHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /attendance", h.ListByDate)
	mux.HandleFunc("POST /attendance", h.Mark)
	mux.HandleFunc("GET /statistics", h.Statistics)
}

// ListByDate returns the records whose stored date equals the query string
// byte-for-byte.
func (h *AttendanceHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: i18n.T(r.Context(), "attendance.date_required"),
			Code:    string(service.KindInvalid),
		})
		return
	}
	respondData(w, r, h.svc.ListByDate(r.Context(), date), "")
}

func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var in model.AttendanceMark
	if !decodeBody(w, r, &in) {
		return
	}
	if err := h.svc.Mark(r.Context(), in); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, nil, "attendance.marked")
}

// Statistics serves the dashboard aggregate. The period query parameter is
// accepted for forward compatibility but does not change the computation.
func (h *AttendanceHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.stats.Summary(r.Context(), time.Now()), "")
}
