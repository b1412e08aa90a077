package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tempobook/backend/internal/domain"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserCtxKey).(*domain.User)

	// A missing provider row is not an error here: the user may simply not
	// have created a provider profile yet.
	var providerOrNil *domain.Provider
	provider, err := h.repository.GetProviderByUserID(user.ID)
	switch {
	case err == nil:
		providerOrNil = provider
	case errors.Is(err, sql.ErrNoRows):
	default:
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"user": user, "provider": providerOrNil})
}

type profileProviderRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email"`
	Slug        string  `json:"slug" validate:"required"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	LogoURL     *string `json:"logo_url"`
}

// UpdateProfile updates the session user's row and applies create-or-update
// semantics to the provider sub-object.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserCtxKey).(*domain.User)

	var req struct {
		User *struct {
			Name *string `json:"name"`
		} `json:"user"`
		Provider *profileProviderRequest `json:"provider"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.User != nil {
		if err := h.repository.UpdateUserName(user.ID, req.User.Name); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		user.Name = req.User.Name
	}

	if req.Provider != nil {
		if err := h.upsertProvider(user, req.Provider); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	var providerOrNil *domain.Provider
	provider, err := h.repository.GetProviderByUserID(user.ID)
	switch {
	case err == nil:
		providerOrNil = provider
	case errors.Is(err, sql.ErrNoRows):
	default:
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"user": user, "provider": providerOrNil})
}

func (h *Handler) upsertProvider(user *domain.User, req *profileProviderRequest) error {
	email := req.Email
	if email == "" {
		email = user.Email
	}

	existing, err := h.repository.GetProviderByUserID(user.ID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		provider := &domain.Provider{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Name:        req.Name,
			Email:       email,
			Phone:       req.Phone,
			Address:     req.Address,
			Description: req.Description,
			Website:     req.Website,
			LogoURL:     req.LogoURL,
			Slug:        req.Slug,
		}
		return h.repository.CreateProvider(provider)
	}

	existing.Name = req.Name
	existing.Email = email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Description = req.Description
	existing.Website = req.Website
	existing.LogoURL = req.LogoURL
	existing.Slug = req.Slug
	return h.repository.UpdateProvider(existing)
}
