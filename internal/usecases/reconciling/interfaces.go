package reconciling

import (
	"github.com/revoa-app/support-api/internal/domain"
)

// Reconciler coordena o final sync de métricas disparado por mudança de status
type Reconciler interface {
	// GetEntitiesNeedingFinalSync lista as mudanças de status pendentes de final
	// sync para uma conta, opcionalmente filtradas por tipo de entidade
	GetEntitiesNeedingFinalSync(adAccountID string, entityType *domain.EntityType) []*domain.StatusChangeEntry

	// ProcessAllPendingFinalSyncs executa o final sync de todas as entidades
	// pendentes da conta, uma a uma, acumulando erros sem abortar as demais
	ProcessAllPendingFinalSyncs(adAccountID string, fetch domain.MetricsFetcher, dateRange *domain.DateRange) *domain.FinalSyncSummary

	// RunSafetyNetSweep varre todas as contas em busca de final syncs pendentes.
	// Retorna erro somente quando a listagem inicial falha; falhas por conta ou
	// por entidade são acumuladas no resumo.
	RunSafetyNetSweep() (*domain.SweepSummary, error)
}

// FetcherFactory cria funções de busca de métricas vinculadas a um token de acesso
type FetcherFactory interface {
	FetcherFor(accessToken string) domain.MetricsFetcher
}
