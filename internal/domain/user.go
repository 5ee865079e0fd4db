package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso dos clientes de serviço
const (
	RoleAdmin          = 1
	RoleRevenueManager = 2
	RoleAnalyst        = 3
)

// APIClient é um cliente de serviço autorizado a chamar a API de operações
type APIClient struct {
	ID         int       `json:"id"`
	ClientID   string    `json:"client_id"`
	Name       string    `json:"name"`
	SecretHash string    `json:"-"`
	RoleID     int       `json:"role_id"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Claims struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	RoleID     int    `json:"role_id"`
	jwt.RegisteredClaims
}
