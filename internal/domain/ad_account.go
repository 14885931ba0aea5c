package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é uma conta de anúncios conectada por um lojista
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Platform   Platform        `json:"platform"`
	UserID     string          `json:"user_id"`
	Status     AdAccountStatus `json:"status"`
}

// PlatformCredential é o token de acesso de uma conta em uma plataforma.
// Credenciais com ExpiresAt no passado são tratadas como inutilizáveis.
type PlatformCredential struct {
	AccountID   string    `json:"account_id"`
	Platform    Platform  `json:"platform"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsExpired indica se a credencial já não pode ser usada
func (c *PlatformCredential) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
