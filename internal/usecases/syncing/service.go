package syncing

import (
	"fmt"
	"time"

	fbdomain "github.com/revoa-app/support-api/infrastructure/integrator/facebook/domain"
	"github.com/revoa-app/support-api/infrastructure/repository"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/reconciling"
	"github.com/sirupsen/logrus"
)

// AdPlatformIntegrator é a fatia da integração com a plataforma de anúncios
// usada pela sincronização de contas
type AdPlatformIntegrator interface {
	FetcherFor(accessToken string) domain.MetricsFetcher
	GetCampaigns(accessToken, accountExternalID string) ([]fbdomain.Campaign, error)
	GetEntityMetrics(accessToken, platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error)
}

// AccountSyncer sincroniza as métricas de uma conta sob demanda
type AccountSyncer interface {
	SyncAccount(adAccountID string, request *domain.AccountSyncRequest) (*domain.AccountSyncResponse, error)
}

// AccountReader expõe as consultas de leitura sobre contas e métricas gravadas
type AccountReader interface {
	ListAdAccounts() ([]*domain.AdAccount, error)
	GetStoredMetrics(entityType domain.EntityType, entityID, startDate, endDate string) ([]*domain.EntityMetric, error)
}

type Service struct {
	cfg                    *config.Config
	adAccountRepository    repository.AdAccountRepository
	entityMetricRepository repository.EntityMetricRepository
	reconciler             reconciling.Reconciler
	adPlatform             AdPlatformIntegrator

	now   func() time.Time
	sleep func(d time.Duration)
}

func NewService(
	cfg *config.Config,
	adAccountRepo repository.AdAccountRepository,
	entityMetricRepo repository.EntityMetricRepository,
	reconciler reconciling.Reconciler,
	adPlatform AdPlatformIntegrator,
) *Service {
	return &Service{
		cfg:                    cfg,
		adAccountRepository:    adAccountRepo,
		entityMetricRepository: entityMetricRepo,
		reconciler:             reconciler,
		adPlatform:             adPlatform,
		now:                    time.Now,
		sleep:                  time.Sleep,
	}
}

// SyncAccount executa a reconciliação de final syncs pendentes da conta e em
// seguida a coleta incremental de métricas das campanhas. A reconciliação roda
// primeiro para que entidades recém-pausadas tenham suas métricas finais
// gravadas antes da coleta regular.
func (s *Service) SyncAccount(adAccountID string, request *domain.AccountSyncRequest) (*domain.AccountSyncResponse, error) {
	if adAccountID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.adAccountRepository.GetAccountByID(adAccountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	credential, err := s.adAccountRepository.GetCredential(account.ID, account.Platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a credencial: %w", err)
	}

	if credential == nil {
		return nil, ErrCredentialMissing
	}

	if credential.IsExpired(s.now()) {
		return nil, ErrCredentialExpired
	}

	dateRange, err := s.resolveDateRange(request)
	if err != nil {
		return nil, err
	}

	fetch := s.adPlatform.FetcherFor(credential.AccessToken)

	finalSync := s.reconciler.ProcessAllPendingFinalSyncs(adAccountID, fetch, dateRange)

	response := &domain.AccountSyncResponse{
		FinalSync: finalSync,
		Errors:    []string{},
	}

	s.syncCampaignMetrics(account, credential.AccessToken, dateRange, response)

	response.Success = finalSync.Success && len(response.Errors) == 0

	return response, nil
}

// syncCampaignMetrics coleta as métricas diárias das campanhas da conta. A
// falha de uma campanha é acumulada e as demais continuam sendo coletadas.
func (s *Service) syncCampaignMetrics(account *domain.AdAccount, accessToken string, dateRange *domain.DateRange, response *domain.AccountSyncResponse) {
	campaigns, err := s.adPlatform.GetCampaigns(accessToken, account.ExternalID)
	if err != nil {
		response.Errors = append(response.Errors, fmt.Sprintf("campaigns: %s", err.Error()))
		return
	}

	startDate, endDate := s.campaignWindow(dateRange)

	for i, campaign := range campaigns {
		// Pausa entre requisições para não estourar o limite da Graph API
		if i > 0 && s.cfg.AccountSync.RequestDelaySeconds > 0 {
			s.sleep(time.Duration(s.cfg.AccountSync.RequestDelaySeconds) * time.Second)
		}

		metrics, err := s.adPlatform.GetEntityMetrics(accessToken, campaign.ID, startDate, endDate)
		if err != nil {
			response.Errors = append(response.Errors, fmt.Sprintf("campaign %s: %s", campaign.ID, err.Error()))
			continue
		}

		for _, metric := range metrics {
			metric.EntityType = domain.EntityTypeCampaign
		}

		if err := s.entityMetricRepository.SaveMetricsAtomic(metrics); err != nil {
			response.Errors = append(response.Errors, fmt.Sprintf("campaign %s: %s", campaign.ID, err.Error()))
			continue
		}

		response.CampaignsSynced++
		response.MetricsCollected += len(metrics)
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": account.ID,
		"campaigns":     response.CampaignsSynced,
		"metrics":       response.MetricsCollected,
		"errors":        len(response.Errors),
	}).Info("account_sync: coleta de métricas de campanhas concluída")
}

// ListAdAccounts lista as contas de anúncios ativas conectadas
func (s *Service) ListAdAccounts() ([]*domain.AdAccount, error) {
	accounts, err := s.adAccountRepository.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar as contas: %w", err)
	}

	return accounts, nil
}

// GetStoredMetrics devolve as métricas diárias já gravadas de uma entidade
// dentro do intervalo informado, em ordem de data
func (s *Service) GetStoredMetrics(entityType domain.EntityType, entityID, startDate, endDate string) ([]*domain.EntityMetric, error) {
	switch entityType {
	case domain.EntityTypeCampaign, domain.EntityTypeAdSet, domain.EntityTypeAd:
	default:
		return nil, ErrInvalidEntityType
	}

	if entityID == "" {
		return nil, ErrEntityIDRequired
	}

	dateRange, err := s.resolveDateRange(&domain.AccountSyncRequest{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}

	start, end := s.campaignWindow(dateRange)

	metrics, err := s.entityMetricRepository.GetByEntityAndDateRange(entityType, entityID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as métricas: %w", err)
	}

	return metrics, nil
}

// resolveDateRange valida o intervalo explícito do request, quando informado
func (s *Service) resolveDateRange(request *domain.AccountSyncRequest) (*domain.DateRange, error) {
	if request == nil || (request.StartDate == "" && request.EndDate == "") {
		return nil, nil
	}

	if request.StartDate == "" || request.EndDate == "" {
		return nil, ErrInvalidDateRange
	}

	startDate, err := time.Parse(time.DateOnly, request.StartDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	endDate, err := time.Parse(time.DateOnly, request.EndDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	return &domain.DateRange{Start: startDate, End: endDate}, nil
}

// campaignWindow devolve a janela da coleta incremental: o intervalo explícito
// quando informado, senão os últimos dias configurados
func (s *Service) campaignWindow(dateRange *domain.DateRange) (time.Time, time.Time) {
	if dateRange != nil {
		return dateRange.Start, dateRange.End
	}

	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -s.cfg.AccountSync.LookbackDays)

	return startDate, endDate
}
