package domain

import (
	"time"
)

type StoreStatus string

const (
	StoreStatusConnected    StoreStatus = "CONNECTED"
	StoreStatusDisconnected StoreStatus = "DISCONNECTED"
)

// Store é uma loja Shopify conectada pelo lojista
type Store struct {
	ID          string      `json:"id"`
	ShopDomain  string      `json:"shop_domain"`
	AccessToken string      `json:"-"`
	UserID      string      `json:"user_id"`
	Status      StoreStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// EmailTemplate é um modelo de e-mail editável pelos agentes de suporte
type EmailTemplate struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CapiSettings é a configuração da Conversions API de uma loja
type CapiSettings struct {
	StoreID       string    `json:"store_id"`
	PixelID       string    `json:"pixel_id"`
	AccessToken   string    `json:"access_token"`
	Enabled       bool      `json:"enabled"`
	TestEventCode string    `json:"test_event_code,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
