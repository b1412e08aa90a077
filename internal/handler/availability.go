package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/tempobook/backend/internal/domain"
)

func (h *Handler) loadAvailability(providerID string) (*domain.Availability, error) {
	availability, err := h.repository.GetAvailability(providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewAvailability(), nil
		}
		return nil, err
	}
	return availability, nil
}

// GetAvailability returns the provider's persisted schedule document, or the
// default weekly template when nothing has been saved yet.
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	availability, err := h.loadAvailability(provider.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"availability": availability})
}

// SaveAvailability replaces the whole document. The dashboard edits the
// schedule locally and submits it in one piece.
func (h *Handler) SaveAvailability(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	availability := &domain.Availability{}
	if err := h.readJSON(r, availability); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := availability.Normalize(); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SaveAvailability(provider.ID, availability); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"availability": availability})
}

// ResolveAvailability answers "what is the effective schedule for this
// date": the date's override when one exists, the weekday template
// otherwise.
func (h *Handler) ResolveAvailability(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	date := r.URL.Query().Get("date")
	if date == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "date is required")
		return
	}

	availability, err := h.loadAvailability(provider.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule, err := availability.Resolve(date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"date": date, "schedule": schedule})
}
