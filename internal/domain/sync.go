package domain

import "time"

// MetricsFetcher busca as métricas diárias de uma entidade na plataforma de
// anúncios dentro do intervalo informado. A função é injetada no fluxo de
// final sync para desacoplar a reconciliação do cliente HTTP da plataforma.
type MetricsFetcher func(platformEntityID string, startDate, endDate time.Time) ([]*EntityMetric, error)

// EntitySyncResult é o resultado do final sync de uma única entidade
type EntitySyncResult struct {
	Success      bool   `json:"success"`
	MetricsCount int    `json:"metrics_count"`
	Error        string `json:"error,omitempty"`
}

// FinalSyncSummary agrega o resultado do caminho inline para uma conta.
// Success é verdadeiro somente quando nenhuma entidade falhou; sucesso parcial
// é reportado com Success=false e os contadores preenchidos.
type FinalSyncSummary struct {
	Success           bool     `json:"success"`
	EntitiesProcessed int      `json:"entities_processed"`
	MetricsCollected  int      `json:"metrics_collected"`
	Errors            []string `json:"errors"`
}

// SweepSummary agrega o resultado da varredura de segurança entre contas
type SweepSummary struct {
	Success           bool     `json:"success"`
	Message           string   `json:"message"`
	AccountsProcessed int      `json:"accounts_processed"`
	TotalEntities     int      `json:"total_entities"`
	TotalMetrics      int      `json:"total_metrics"`
	Errors            []string `json:"errors"`
}

// AccountSyncRequest é o corpo opcional do endpoint de sincronização de conta
type AccountSyncRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// AccountSyncResponse embute o resumo de reconciliação na resposta do sync
type AccountSyncResponse struct {
	Success          bool              `json:"success"`
	FinalSync        *FinalSyncSummary `json:"final_sync"`
	CampaignsSynced  int               `json:"campaigns_synced"`
	MetricsCollected int               `json:"metrics_collected"`
	Errors           []string          `json:"errors"`
}
