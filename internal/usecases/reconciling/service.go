package reconciling

import (
	"fmt"
	"time"

	"github.com/revoa-app/support-api/infrastructure/repository"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type Service struct {
	cfg                       *config.Config
	statusChangeLogRepository repository.StatusChangeLogRepository
	entityMetricRepository    repository.EntityMetricRepository
	adAccountRepository       repository.AdAccountRepository
	fetcherFactory            FetcherFactory

	// now é substituível nos testes
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	statusChangeLogRepo repository.StatusChangeLogRepository,
	entityMetricRepo repository.EntityMetricRepository,
	adAccountRepo repository.AdAccountRepository,
	fetcherFactory FetcherFactory,
) *Service {
	return &Service{
		cfg:                       cfg,
		statusChangeLogRepository: statusChangeLogRepo,
		entityMetricRepository:    entityMetricRepo,
		adAccountRepository:       adAccountRepo,
		fetcherFactory:            fetcherFactory,
		now:                       time.Now,
	}
}

// GetEntitiesNeedingFinalSync lista as mudanças de status pendentes de final
// sync. Falha na consulta vira lista vazia com warning no log: o seletor nunca
// derruba o fluxo de sincronização que o chama.
func (s *Service) GetEntitiesNeedingFinalSync(adAccountID string, entityType *domain.EntityType) []*domain.StatusChangeEntry {
	entries, err := s.statusChangeLogRepository.ListPendingFinalSync(adAccountID, entityType)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": adAccountID,
			"error":         err.Error(),
		}).Warn("final_sync: falha ao listar entidades pendentes, seguindo com lista vazia")
		return []*domain.StatusChangeEntry{}
	}

	return entries
}

// ProcessAllPendingFinalSyncs executa o final sync de todas as entidades
// pendentes da conta, sequencialmente. O erro de uma entidade é acumulado e as
// demais continuam sendo processadas.
func (s *Service) ProcessAllPendingFinalSyncs(adAccountID string, fetch domain.MetricsFetcher, dateRange *domain.DateRange) *domain.FinalSyncSummary {
	summary := &domain.FinalSyncSummary{
		Success: true,
		Errors:  []string{},
	}

	entries := s.GetEntitiesNeedingFinalSync(adAccountID, nil)
	if len(entries) == 0 {
		return summary
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"entities":      len(entries),
	}).Info("final_sync: processando entidades pendentes")

	for _, entry := range entries {
		result := s.processFinalSyncForEntity(entry, fetch, dateRange)

		summary.EntitiesProcessed++
		summary.MetricsCollected += result.MetricsCount

		if !result.Success {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s %s: %s", entry.EntityType, entry.PlatformEntityID, result.Error))
		}
	}

	summary.Success = len(summary.Errors) == 0

	return summary
}

// processFinalSyncForEntity busca as métricas finais de uma entidade e grava o
// lote de forma atômica. O registro de mudança de status só é marcado como
// concluído quando busca e persistência terminam sem erro; em caso de falha o
// registro permanece pendente com o erro anotado, e a varredura de segurança
// tentará novamente.
func (s *Service) processFinalSyncForEntity(entry *domain.StatusChangeEntry, fetch domain.MetricsFetcher, dateRange *domain.DateRange) *domain.EntitySyncResult {
	startDate, endDate := s.resolveWindow(entry, dateRange)

	metrics, err := fetch(entry.PlatformEntityID, startDate, endDate)
	if err != nil {
		s.markFinalSync(entry, false, err.Error())
		return &domain.EntitySyncResult{Success: false, Error: err.Error()}
	}

	for _, metric := range metrics {
		metric.EntityType = entry.EntityType
	}

	if err := s.entityMetricRepository.SaveMetricsAtomic(metrics); err != nil {
		s.markFinalSync(entry, false, err.Error())
		return &domain.EntitySyncResult{Success: false, Error: err.Error()}
	}

	// Zero métricas no intervalo ainda é um final sync bem-sucedido
	s.markFinalSync(entry, true, "")

	return &domain.EntitySyncResult{Success: true, MetricsCount: len(metrics)}
}

// resolveWindow determina o intervalo do final sync: o intervalo explícito
// quando informado, senão da data da mudança de status até hoje.
func (s *Service) resolveWindow(entry *domain.StatusChangeEntry, dateRange *domain.DateRange) (time.Time, time.Time) {
	if dateRange != nil {
		return dateRange.Start, dateRange.End
	}

	return entry.CreatedAt, s.now()
}

func (s *Service) markFinalSync(entry *domain.StatusChangeEntry, success bool, syncErr string) {
	var errPtr *string
	if syncErr != "" {
		errPtr = &syncErr
	}

	if err := s.statusChangeLogRepository.MarkFinalSyncCompleted(entry.LogID, success, errPtr); err != nil {
		// A persistência das métricas é idempotente, então um registro que ficar
		// pendente por falha aqui será reprocessado sem duplicar dados
		logrus.WithFields(logrus.Fields{
			"log_id": entry.LogID,
			"error":  err.Error(),
		}).Error("final_sync: falha ao atualizar o registro de mudança de status")
	}
}

// RunSafetyNetSweep varre todas as contas em busca de final syncs que o caminho
// inline perdeu. Cada conta é processada de forma isolada: credencial ausente ou
// expirada gera um erro no resumo e a varredura segue para a próxima conta.
func (s *Service) RunSafetyNetSweep() (*domain.SweepSummary, error) {
	entries, err := s.statusChangeLogRepository.ListPendingFinalSyncAllAccounts()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar final syncs pendentes: %w", err)
	}

	summary := &domain.SweepSummary{
		Success: true,
		Errors:  []string{},
	}

	if len(entries) == 0 {
		summary.Message = "Nenhum final sync pendente encontrado"
		return summary, nil
	}

	// Agrupa preservando a ordem de chegada das contas
	groups := make(map[string][]*domain.StatusChangeEntry)
	accountOrder := make([]string, 0)
	for _, entry := range entries {
		if _, ok := groups[entry.AdAccountID]; !ok {
			accountOrder = append(accountOrder, entry.AdAccountID)
		}
		groups[entry.AdAccountID] = append(groups[entry.AdAccountID], entry)
	}

	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -s.cfg.FinalSyncSafety.LookbackDays)
	dateRange := &domain.DateRange{Start: startDate, End: endDate}

	for _, adAccountID := range accountOrder {
		accountEntries := groups[adAccountID]

		fetch, accountName, err := s.fetcherForAccount(adAccountID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", accountName, err.Error()))
			continue
		}

		summary.AccountsProcessed++

		for _, entry := range accountEntries {
			result := s.processFinalSyncForEntity(entry, fetch, dateRange)

			summary.TotalEntities++
			summary.TotalMetrics += result.MetricsCount

			if !result.Success {
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s %s: %s", accountName, entry.EntityType, entry.PlatformEntityID, result.Error))
			}
		}
	}

	summary.Success = len(summary.Errors) == 0
	summary.Message = fmt.Sprintf("Varredura concluída: %d contas, %d entidades, %d métricas", summary.AccountsProcessed, summary.TotalEntities, summary.TotalMetrics)

	logrus.WithFields(logrus.Fields{
		"accounts": summary.AccountsProcessed,
		"entities": summary.TotalEntities,
		"metrics":  summary.TotalMetrics,
		"errors":   len(summary.Errors),
	}).Info("final_sync: varredura de segurança concluída")

	return summary, nil
}

// fetcherForAccount resolve a conta e sua credencial de plataforma, devolvendo
// a função de busca pronta e o nome da conta para compor mensagens de erro.
func (s *Service) fetcherForAccount(adAccountID string) (domain.MetricsFetcher, string, error) {
	account, err := s.adAccountRepository.GetAccountByID(adAccountID)
	if err != nil {
		return nil, adAccountID, fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if account == nil {
		return nil, adAccountID, fmt.Errorf("conta não encontrada")
	}

	credential, err := s.adAccountRepository.GetCredential(account.ID, account.Platform)
	if err != nil {
		return nil, account.Name, fmt.Errorf("erro ao buscar a credencial: %w", err)
	}

	if credential == nil {
		return nil, account.Name, fmt.Errorf("conta sem credencial cadastrada")
	}

	if credential.IsExpired(s.now()) {
		return nil, account.Name, fmt.Errorf("credencial expirada")
	}

	return s.fetcherFactory.FetcherFor(credential.AccessToken), account.Name, nil
}
