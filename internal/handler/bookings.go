package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tempobook/backend/internal/domain"
)

func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	bookings, err := h.repository.GetBookingsByProviderID(provider.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"bookings": bookings})
}

// CreateBooking is the public booking-page endpoint. Whatever status the
// caller supplies is discarded: every booking starts out pending. The
// requested date and time are stored as-is, with no cross-check against the
// provider's availability.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProviderID    string `json:"provider_id" validate:"required"`
		ServiceID     string `json:"service_id" validate:"required"`
		CustomerName  string `json:"customer_name" validate:"required"`
		CustomerEmail string `json:"customer_email" validate:"required,email"`
		CustomerPhone string `json:"customer_phone" validate:"required"`
		BookingDate   string `json:"booking_date" validate:"required"`
		BookingTime   string `json:"booking_time" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		ProviderID:    req.ProviderID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		Status:        domain.BookingStatusPending,
	}
	if err := h.repository.CreateBooking(booking); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, map[string]any{"booking": booking})
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	provider := r.Context().Value(ProviderCtxKey).(*domain.Provider)

	var req struct {
		ID     string `json:"id" validate:"required"`
		Status string `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	booking, err := h.repository.UpdateBookingStatus(req.ID, provider.ID, status)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Booking not found or you do not have permission to update it")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"booking": booking})
}
