package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/callsentry/callscreen/internal/domain"
	"github.com/callsentry/callscreen/internal/service"
)

type Handler struct {
	service service.Service
}

func NewHandler(s service.Service) *Handler {
	return &Handler{
		service: s,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/v1/screen", h.ScreenCall)
	r.Get("/v1/numbers/{number}/history", h.History)
	r.Get("/v1/numbers/{number}/stats", h.Stats)
	r.Delete("/v1/numbers/{number}", h.DeleteNumber)
}

func (h *Handler) ScreenCall(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	screening, err := h.service.ScreenCall(r.Context(), req.PhoneNumber, req.Mode)
	if err != nil {
		log.Printf("❌ ERROR ScreenCall: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(screening)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	phoneNumber := chi.URLParam(r, "number")

	history, err := h.service.History(r.Context(), phoneNumber)
	if err != nil {
		log.Printf("❌ ERROR History: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if history == nil {
		history = []*domain.Screening{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	phoneNumber := chi.URLParam(r, "number")

	stats, err := h.service.Stats(r.Context(), phoneNumber)
	if err != nil {
		log.Printf("❌ ERROR Stats: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if stats == nil {
		// Never-seen numbers report empty aggregates, not 404.
		stats = &domain.NumberStats{PhoneNumber: phoneNumber}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) DeleteNumber(w http.ResponseWriter, r *http.Request) {
	phoneNumber := chi.URLParam(r, "number")

	if err := h.service.DeleteHistory(r.Context(), phoneNumber); err != nil {
		log.Printf("❌ ERROR DeleteNumber: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
