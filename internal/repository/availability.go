package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tempobook/backend/internal/domain"
)

// GetAvailability loads a provider's persisted availability document.
// Returns sql.ErrNoRows when the provider has never saved one.
func (r *Repository) GetAvailability(providerID string) (*domain.Availability, error) {
	query := `
		SELECT schedule FROM provider_availability WHERE provider_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var raw []byte
	if err := r.dbpool.QueryRowContext(ctx, query, providerID).Scan(&raw); err != nil {
		return nil, err
	}

	availability := &domain.Availability{}
	if err := json.Unmarshal(raw, availability); err != nil {
		return nil, err
	}
	if err := availability.Normalize(); err != nil {
		return nil, err
	}

	return availability, nil
}

// SaveAvailability upserts a provider's availability document as jsonb.
func (r *Repository) SaveAvailability(providerID string, availability *domain.Availability) error {
	raw, err := json.Marshal(availability)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO provider_availability (provider_id, schedule, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (provider_id) DO UPDATE SET schedule = $2, updated_at = now()
	`

	if _, err := r.dbpool.ExecContext(ctx, query, providerID, raw); err != nil {
		return err
	}

	return nil
}
