package entities

import "time"

// User is a storefront customer account. The order engine only ever reads
// users; it never mutates them.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserContact is the slice of user fields joined onto orders for display.
type UserContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Admin is a back-office account. ResetTokenHash holds the sha256 of an
// outstanding password-reset token, empty when none is pending.
type Admin struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	ResetTokenHash   string    `json:"-"`
	ResetTokenExpiry time.Time `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}
