package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// identity resolved from a bearer credential by the identity provider
type Identity struct {
	UserID        string
	WalletAddress string
}

// represents JWT claims embedded in a bearer credential
type Claims struct {
	UserID        string `json:"user_id"`
	WalletAddress string `json:"wallet_address,omitempty"`
	jwt.RegisteredClaims
}
