package domain

import (
	"time"
)

type Provider struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	Website     *string   `json:"website"`
	LogoURL     *string   `json:"logo_url"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
}

type Service struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Duration    int32     `json:"duration"` // minutes
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
