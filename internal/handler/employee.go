package handler

import (
	"net/http"

	"go.uber.org/zap"

	"salom-api/internal/model"
	"salom-api/internal/service"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
	log *zap.Logger
}

func NewEmployeeHandler(svc *service.EmployeeService, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: log}
}

func (h *EmployeeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /employees", h.List)
	mux.HandleFunc("POST /employees", h.Create)
	mux.HandleFunc("PUT /employees/{id}", h.Update)
	mux.HandleFunc("DELETE /employees/{id}", h.Delete)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.svc.List(r.Context()), "")
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.EmployeeInput
	if !decodeBody(w, r, &in) {
		return
	}
	employee, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, employee, "employee.created")
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.EmployeePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	employee, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, employee, "employee.updated")
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, nil, "employee.deleted")
}
