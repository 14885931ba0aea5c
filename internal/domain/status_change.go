package domain

import (
	"strings"
	"time"
)

// Platform identifica a plataforma de anúncios de origem de uma entidade
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformTikTok   Platform = "tiktok"
)

// EntityType identifica o nível da entidade na hierarquia da plataforma
type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
)

// Status normalizados reportados pelas plataformas de anúncios
const (
	StatusActive   = "ACTIVE"
	StatusPaused   = "PAUSED"
	StatusDeleted  = "DELETED"
	StatusArchived = "ARCHIVED"
)

// StatusChangeEntry é uma linha do log de transições de status escrita pelo
// processo de detecção upstream. O log é apenas de inserção: somente os campos
// de final sync são atualizados depois da criação.
type StatusChangeEntry struct {
	LogID              string     `json:"log_id"`
	AdAccountID        string     `json:"ad_account_id"`
	UserID             string     `json:"user_id"`
	Platform           Platform   `json:"platform"`
	EntityType         EntityType `json:"entity_type"`
	EntityID           string     `json:"entity_id"`
	PlatformEntityID   string     `json:"platform_entity_id"`
	OldStatus          string     `json:"old_status"`
	NewStatus          string     `json:"new_status"`
	CreatedAt          time.Time  `json:"created_at"`
	FinalSyncCompleted bool       `json:"final_sync_completed"`
	FinalSyncError     *string    `json:"final_sync_error"`
}

// RequiresFinalSync decide se uma transição de status exige a coleta final de
// métricas: apenas ACTIVE -> {PAUSED, DELETED, ARCHIVED}, sem diferenciar
// maiúsculas de minúsculas. É a única fonte de verdade para essa regra.
func RequiresFinalSync(oldStatus, newStatus string) bool {
	if !strings.EqualFold(oldStatus, StatusActive) {
		return false
	}

	return strings.EqualFold(newStatus, StatusPaused) ||
		strings.EqualFold(newStatus, StatusDeleted) ||
		strings.EqualFold(newStatus, StatusArchived)
}

// DateRange é uma janela de datas de calendário, inclusiva nas duas pontas
type DateRange struct {
	Start time.Time
	End   time.Time
}
