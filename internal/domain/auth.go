package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as declarações carregadas no token de acesso dos agentes
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
