package handler

import (
	"net/http"

	"go.uber.org/zap"

	"salom-api/internal/model"
	"salom-api/internal/service"
)

type DepartmentHandler struct {
	svc *service.DepartmentService
	log *zap.Logger
}

func NewDepartmentHandler(svc *service.DepartmentService, log *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, log: log}
}

func (h *DepartmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /departments", h.List)
	mux.HandleFunc("POST /departments", h.Create)
	mux.HandleFunc("PUT /departments/{id}", h.Update)
	mux.HandleFunc("DELETE /departments/{id}", h.Delete)
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.svc.List(r.Context()), "")
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.DepartmentInput
	if !decodeBody(w, r, &in) {
		return
	}
	department, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, department, "department.created")
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.DepartmentPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	department, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, department, "department.updated")
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, nil, "department.deleted")
}
