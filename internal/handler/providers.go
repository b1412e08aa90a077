package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tempobook/backend/internal/domain"
)

// GetProviders serves both the public booking page (?slug= returns one
// provider plus its services) and the plain provider directory.
func (h *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	if slug == "" {
		providers, err := h.repository.GetAllProviders()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.writeJSON(w, r, http.StatusOK, map[string]any{"providers": providers})
		return
	}

	provider, err := h.repository.GetProviderBySlug(slug)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Provider not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	services, err := h.repository.GetServicesByProviderID(provider.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"provider": provider, "services": services})
}

func (h *Handler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	sub := r.Context().Value(SubCtxKey).(string)

	var req struct {
		Name        string  `json:"name" validate:"required"`
		Email       string  `json:"email" validate:"required,email"`
		Slug        string  `json:"slug" validate:"required"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		Description *string `json:"description"`
		Website     *string `json:"website"`
		LogoURL     *string `json:"logo_url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	isExists, err := h.repository.CheckSlugIfExists(req.Slug)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.errorResponse(w, r, http.StatusBadRequest, "This URL slug is already taken")
		return
	}

	provider := &domain.Provider{
		ID:          uuid.NewString(),
		UserID:      sub,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Slug:        req.Slug,
	}
	if err := h.repository.CreateProvider(provider); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, map[string]any{"provider": provider})
}
