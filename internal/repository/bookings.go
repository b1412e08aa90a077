package repository

import (
	"context"
	"time"

	"github.com/tempobook/backend/internal/domain"
)

func (r *Repository) CreateBooking(booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO bookings (id, provider_id, service_id, customer_name, customer_email, customer_phone, booking_date, booking_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	args := []any{
		booking.ID,
		booking.ProviderID,
		booking.ServiceID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.BookingDate,
		booking.BookingTime,
		booking.Status,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetBookingsByProviderID lists a provider's bookings with the service
// name/duration/price joined in, ordered by date then time ascending.
func (r *Repository) GetBookingsByProviderID(providerID string) ([]*domain.Booking, error) {
	query := `
		SELECT
			b.id,
			b.service_id,
			b.customer_name,
			b.customer_email,
			b.customer_phone,
			b.booking_date,
			b.booking_time,
			b.status,
			b.created_at,
			s.name,
			s.duration,
			s.price
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE b.provider_id = $1
		ORDER BY b.booking_date, b.booking_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking := &domain.Booking{
			ProviderID: providerID,
			Service:    &domain.BookingService{},
		}
		dst := []any{
			&booking.ID,
			&booking.ServiceID,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.CustomerPhone,
			&booking.BookingDate,
			&booking.BookingTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.Service.Name,
			&booking.Service.Duration,
			&booking.Service.Price,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateBookingStatus sets the status of a booking owned by providerID. A
// missing or foreign booking returns sql.ErrNoRows; callers must not be able
// to tell the two apart.
func (r *Repository) UpdateBookingStatus(id string, providerID string, status domain.BookingStatus) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2 AND provider_id = $3
		RETURNING service_id, customer_name, customer_email, customer_phone, booking_date, booking_time, created_at
	`

	booking := &domain.Booking{
		ID:         id,
		ProviderID: providerID,
		Status:     status,
	}

	dst := []any{
		&booking.ServiceID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, status, id, providerID).Scan(dst...); err != nil {
		return nil, err
	}

	return booking, nil
}
