package domain

import (
	"time"
)

// User is an account row. Users created through the auth-provider webhook
// keep the provider's id and have no password hash, so they cannot log in
// with a local password.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
