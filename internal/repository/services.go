package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/tempobook/backend/internal/domain"
)

func (r *Repository) CreateService(service *domain.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO services (id, provider_id, name, description, duration, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	args := []any{service.ID, service.ProviderID, service.Name, service.Description, service.Duration, service.Price}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&service.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetServicesByProviderID(providerID string) ([]*domain.Service, error) {
	query := `
		SELECT id, name, description, duration, price, created_at
		FROM services WHERE provider_id = $1
		ORDER BY created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service := &domain.Service{
			ProviderID: providerID,
		}
		dst := []any{&service.ID, &service.Name, &service.Description, &service.Duration, &service.Price, &service.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

// ServicePatch carries the partial update of a service; nil fields are left
// unchanged.
type ServicePatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Duration    *int32   `json:"duration"`
	Price       *float64 `json:"price"`
}

// UpdateService applies a patch to a service owned by providerID. The
// ownership filter is part of the statement, so a foreign row behaves
// exactly like a missing one: sql.ErrNoRows.
func (r *Repository) UpdateService(id string, providerID string, patch *ServicePatch) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE services
		SET
			name = COALESCE($1, name),
			description = COALESCE($2, description),
			duration = COALESCE($3, duration),
			price = COALESCE($4, price)
		WHERE id = $5 AND provider_id = $6
		RETURNING name, description, duration, price, created_at
	`

	service := &domain.Service{
		ID:         id,
		ProviderID: providerID,
	}

	args := []any{patch.Name, patch.Description, patch.Duration, patch.Price, id, providerID}
	dst := []any{&service.Name, &service.Description, &service.Duration, &service.Price, &service.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return nil, err
	}

	return service, nil
}

// DeleteService removes a service owned by providerID. Deleting a missing or
// foreign row returns sql.ErrNoRows.
func (r *Repository) DeleteService(id string, providerID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM services WHERE id = $1 AND provider_id = $2
	`

	result, err := r.dbpool.ExecContext(ctx, query, id, providerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
