package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tempobook/backend/internal/domain"
	"github.com/tempobook/backend/internal/repository"
)

// GetServices lists services. With ?provider_id= it is a public booking-page
// lookup; without it, it lists the session provider's own services.
func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	providerID := r.URL.Query().Get("provider_id")

	if providerID == "" {
		sub, err := h.sessionSubject(r)
		if err != nil {
			h.unauthorized(w, r)
			return
		}

		provider, err := h.repository.GetProviderByUserID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "No provider profile found for this user")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		providerID = provider.ID
	}

	services, err := h.repository.GetServicesByProviderID(providerID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"services": services})
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	var req struct {
		Name        string   `json:"name" validate:"required"`
		Description *string  `json:"description"`
		Duration    *int32   `json:"duration" validate:"required"`
		Price       *float64 `json:"price" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	service := &domain.Service{
		ID:          uuid.NewString(),
		ProviderID:  provider.ID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    *req.Duration,
		Price:       *req.Price,
	}
	if err := h.repository.CreateService(service); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, map[string]any{"service": service})
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	var req struct {
		ID          string   `json:"id" validate:"required"`
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Duration    *int32   `json:"duration"`
		Price       *float64 `json:"price"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := &repository.ServicePatch{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	}

	service, err := h.repository.UpdateService(req.ID, provider.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Service not found or you do not have permission to update it")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"service": service})
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	serviceID := r.URL.Query().Get("id")
	if serviceID == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "Service ID is required")
		return
	}

	if err := h.repository.DeleteService(serviceID, provider.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Service not found or you do not have permission to delete it")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
}
