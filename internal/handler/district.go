package handler

import (
	"net/http"

	"go.uber.org/zap"

	"salom-api/internal/model"
	"salom-api/internal/service"
)

type DistrictHandler struct {
	svc *service.DistrictService
	log *zap.Logger
}

func NewDistrictHandler(svc *service.DistrictService, log *zap.Logger) *DistrictHandler {
	return &DistrictHandler{svc: svc, log: log}
}

func (h *DistrictHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /districts", h.List)
	mux.HandleFunc("POST /districts", h.Create)
	mux.HandleFunc("PUT /districts/{id}", h.Update)
	mux.HandleFunc("DELETE /districts/{id}", h.Delete)
}

func (h *DistrictHandler) List(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.svc.List(r.Context()), "")
}

func (h *DistrictHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.DistrictInput
	if !decodeBody(w, r, &in) {
		return
	}
	district, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, district, "district.created")
}

func (h *DistrictHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.DistrictPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	district, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, district, "district.updated")
}

func (h *DistrictHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondData(w, r, nil, "district.deleted")
}
