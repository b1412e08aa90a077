package repository

import (
	"context"
	"time"

	"github.com/tempobook/backend/internal/domain"
)

func (r *Repository) CreateProvider(provider *domain.Provider) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO providers (id, user_id, name, email, phone, address, description, website, logo_url, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	args := []any{
		provider.ID,
		provider.UserID,
		provider.Name,
		provider.Email,
		provider.Phone,
		provider.Address,
		provider.Description,
		provider.Website,
		provider.LogoURL,
		provider.Slug,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&provider.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProviderByUserID(userID string) (*domain.Provider, error) {
	query := `
		SELECT id, name, email, phone, address, description, website, logo_url, slug, created_at
		FROM providers WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	provider := &domain.Provider{
		UserID: userID,
	}

	dst := []any{
		&provider.ID,
		&provider.Name,
		&provider.Email,
		&provider.Phone,
		&provider.Address,
		&provider.Description,
		&provider.Website,
		&provider.LogoURL,
		&provider.Slug,
		&provider.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return provider, nil
}

func (r *Repository) GetProviderBySlug(slug string) (*domain.Provider, error) {
	query := `
		SELECT id, user_id, name, email, phone, address, description, website, logo_url, created_at
		FROM providers WHERE slug = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	provider := &domain.Provider{
		Slug: slug,
	}

	dst := []any{
		&provider.ID,
		&provider.UserID,
		&provider.Name,
		&provider.Email,
		&provider.Phone,
		&provider.Address,
		&provider.Description,
		&provider.Website,
		&provider.LogoURL,
		&provider.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, slug).Scan(dst...); err != nil {
		return nil, err
	}

	return provider, nil
}

func (r *Repository) GetAllProviders() ([]*domain.Provider, error) {
	query := `
		SELECT id, user_id, name, email, phone, address, description, website, logo_url, slug, created_at
		FROM providers
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		provider := &domain.Provider{}
		dst := []any{
			&provider.ID,
			&provider.UserID,
			&provider.Name,
			&provider.Email,
			&provider.Phone,
			&provider.Address,
			&provider.Description,
			&provider.Website,
			&provider.LogoURL,
			&provider.Slug,
			&provider.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}

func (r *Repository) UpdateProvider(provider *domain.Provider) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE providers
		SET
			name = $1,
			email = $2,
			phone = $3,
			address = $4,
			description = $5,
			website = $6,
			logo_url = $7,
			slug = $8
		WHERE id = $9
		RETURNING created_at
	`

	args := []any{
		provider.Name,
		provider.Email,
		provider.Phone,
		provider.Address,
		provider.Description,
		provider.Website,
		provider.LogoURL,
		provider.Slug,
		provider.ID,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&provider.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckSlugIfExists(slug string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM providers WHERE slug = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, slug).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
