package models

import "time"

// AuthNonce stores the login nonce a wallet must sign. One active nonce per address.
type AuthNonce struct {
	Address   string    `json:"address" gorm:"primaryKey"`
	Nonce     string    `json:"nonce" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
