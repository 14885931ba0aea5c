package syncing

import (
	"errors"
	"testing"
	"time"

	fbdomain "github.com/revoa-app/support-api/infrastructure/integrator/facebook/domain"
	"github.com/revoa-app/support-api/infrastructure/repository/mocks"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubAdPlatform struct {
	campaigns    []fbdomain.Campaign
	campaignsErr error
	metrics      map[string][]*domain.EntityMetric
	metricsErr   map[string]error
}

func (s *stubAdPlatform) FetcherFor(accessToken string) domain.MetricsFetcher {
	return func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
		return s.metrics[platformEntityID], s.metricsErr[platformEntityID]
	}
}

func (s *stubAdPlatform) GetCampaigns(accessToken, accountExternalID string) ([]fbdomain.Campaign, error) {
	return s.campaigns, s.campaignsErr
}

func (s *stubAdPlatform) GetEntityMetrics(accessToken, platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
	return s.metrics[platformEntityID], s.metricsErr[platformEntityID]
}

type stubInlineReconciler struct {
	summary      *domain.FinalSyncSummary
	gotAccountID string
	gotRange     *domain.DateRange
}

func (r *stubInlineReconciler) GetEntitiesNeedingFinalSync(adAccountID string, entityType *domain.EntityType) []*domain.StatusChangeEntry {
	return nil
}

func (r *stubInlineReconciler) ProcessAllPendingFinalSyncs(adAccountID string, fetch domain.MetricsFetcher, dateRange *domain.DateRange) *domain.FinalSyncSummary {
	r.gotAccountID = adAccountID
	r.gotRange = dateRange
	return r.summary
}

func (r *stubInlineReconciler) RunSafetyNetSweep() (*domain.SweepSummary, error) {
	return nil, nil
}

func newSyncTestService(t *testing.T, adPlatform *stubAdPlatform, reconciler *stubInlineReconciler) (*Service, *mocks.MockAdAccountRepository, *mocks.MockEntityMetricRepository) {
	ctrl := gomock.NewController(t)

	accountRepo := mocks.NewMockAdAccountRepository(ctrl)
	metricRepo := mocks.NewMockEntityMetricRepository(ctrl)

	cfg := &config.Config{}
	cfg.AccountSync.LookbackDays = 7
	cfg.AccountSync.RequestDelaySeconds = 2

	service := NewService(cfg, accountRepo, metricRepo, reconciler, adPlatform)
	service.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	service.sleep = func(d time.Duration) {}

	return service, accountRepo, metricRepo
}

func activeAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "999",
		Name:       "Loja A",
		Platform:   domain.PlatformFacebook,
	}
}

func validCredential() *domain.PlatformCredential {
	return &domain.PlatformCredential{
		AccountID:   "ACC001",
		Platform:    domain.PlatformFacebook,
		AccessToken: "token-a",
	}
}

func TestSyncAccount(t *testing.T) {
	t.Run("deve executar a reconciliação antes da coleta de campanhas", func(t *testing.T) {
		adPlatform := &stubAdPlatform{
			campaigns: []fbdomain.Campaign{{ID: "111", Name: "Campanha A", Status: "PAUSED"}},
			metrics: map[string][]*domain.EntityMetric{
				"111": {
					{EntityID: "111", Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Impressions: 100},
				},
			},
		}
		reconciler := &stubInlineReconciler{
			summary: &domain.FinalSyncSummary{Success: true, EntitiesProcessed: 1, MetricsCollected: 3, Errors: []string{}},
		}

		service, accountRepo, metricRepo := newSyncTestService(t, adPlatform, reconciler)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(activeAccount(), nil)
		accountRepo.EXPECT().GetCredential("ACC001", domain.PlatformFacebook).Return(validCredential(), nil)
		metricRepo.EXPECT().
			SaveMetricsAtomic(gomock.Any()).
			DoAndReturn(func(metrics []*domain.EntityMetric) error {
				require.Len(t, metrics, 1)
				assert.Equal(t, domain.EntityTypeCampaign, metrics[0].EntityType)
				return nil
			})

		response, err := service.SyncAccount("ACC001", nil)
		require.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "ACC001", reconciler.gotAccountID)
		assert.Equal(t, 1, response.CampaignsSynced)
		assert.Equal(t, 1, response.MetricsCollected)
		require.NotNil(t, response.FinalSync)
		assert.Equal(t, 3, response.FinalSync.MetricsCollected)
	})

	t.Run("deve retornar erro para conta desconhecida", func(t *testing.T) {
		service, accountRepo, _ := newSyncTestService(t, &stubAdPlatform{}, &stubInlineReconciler{})

		accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

		_, err := service.SyncAccount("ACC404", nil)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("deve rejeitar credencial expirada", func(t *testing.T) {
		service, accountRepo, _ := newSyncTestService(t, &stubAdPlatform{}, &stubInlineReconciler{})

		credential := validCredential()
		credential.ExpiresAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(activeAccount(), nil)
		accountRepo.EXPECT().GetCredential("ACC001", domain.PlatformFacebook).Return(credential, nil)

		_, err := service.SyncAccount("ACC001", nil)
		assert.ErrorIs(t, err, ErrCredentialExpired)
	})

	t.Run("deve rejeitar intervalo de datas inválido", func(t *testing.T) {
		service, accountRepo, _ := newSyncTestService(t, &stubAdPlatform{}, &stubInlineReconciler{})

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(activeAccount(), nil)
		accountRepo.EXPECT().GetCredential("ACC001", domain.PlatformFacebook).Return(validCredential(), nil)

		request := &domain.AccountSyncRequest{StartDate: "2025-06-07", EndDate: "2025-06-01"}
		_, err := service.SyncAccount("ACC001", request)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("deve repassar o intervalo explícito para a reconciliação", func(t *testing.T) {
		reconciler := &stubInlineReconciler{
			summary: &domain.FinalSyncSummary{Success: true, Errors: []string{}},
		}
		service, accountRepo, _ := newSyncTestService(t, &stubAdPlatform{}, reconciler)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(activeAccount(), nil)
		accountRepo.EXPECT().GetCredential("ACC001", domain.PlatformFacebook).Return(validCredential(), nil)

		request := &domain.AccountSyncRequest{StartDate: "2025-06-01", EndDate: "2025-06-07"}
		response, err := service.SyncAccount("ACC001", request)
		require.NoError(t, err)

		require.NotNil(t, reconciler.gotRange)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), reconciler.gotRange.Start)
		assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), reconciler.gotRange.End)
		assert.True(t, response.Success)
	})

	t.Run("deve isolar a falha de uma campanha sem abortar as demais", func(t *testing.T) {
		adPlatform := &stubAdPlatform{
			campaigns: []fbdomain.Campaign{
				{ID: "111", Name: "Campanha A", Status: "ACTIVE"},
				{ID: "222", Name: "Campanha B", Status: "ACTIVE"},
			},
			metrics: map[string][]*domain.EntityMetric{
				"111": {{EntityID: "111", Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}},
			},
			metricsErr: map[string]error{
				"222": errors.New("limite de requisições atingido"),
			},
		}
		reconciler := &stubInlineReconciler{
			summary: &domain.FinalSyncSummary{Success: true, Errors: []string{}},
		}

		service, accountRepo, metricRepo := newSyncTestService(t, adPlatform, reconciler)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(activeAccount(), nil)
		accountRepo.EXPECT().GetCredential("ACC001", domain.PlatformFacebook).Return(validCredential(), nil)
		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Any()).Return(nil)

		response, err := service.SyncAccount("ACC001", nil)
		require.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, 1, response.CampaignsSynced)
		require.Len(t, response.Errors, 1)
		assert.Contains(t, response.Errors[0], "campaign 222")
	})
}

func TestAccountReads(t *testing.T) {
	t.Run("deve listar apenas contas ativas", func(t *testing.T) {
		service, accountRepo, _ := newSyncTestService(t, &stubAdPlatform{}, &stubInlineReconciler{})

		accountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return([]*domain.AdAccount{activeAccount()}, nil)

		accounts, err := service.ListAdAccounts()
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "ACC001", accounts[0].ID)
	})

	t.Run("deve rejeitar consulta de métricas com tipo de entidade inválido", func(t *testing.T) {
		service, _, _ := newSyncTestService(t, &stubAdPlatform{}, &stubInlineReconciler{})

		_, err := service.GetStoredMetrics(domain.EntityType("banner"), "111", "", "")
		assert.ErrorIs(t, err, ErrInvalidEntityType)
	})

	t.Run("deve consultar métricas com a janela padrão quando não há intervalo", func(t *testing.T) {
		service, _, metricRepo := newSyncTestService(t, &stubAdPlatform{}, &stubInlineReconciler{})

		expectedEnd := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		expectedStart := expectedEnd.AddDate(0, 0, -7)

		metricRepo.EXPECT().
			GetByEntityAndDateRange(domain.EntityTypeCampaign, "111", expectedStart, expectedEnd).
			Return([]*domain.EntityMetric{{EntityID: "111", EntityType: domain.EntityTypeCampaign}}, nil)

		metrics, err := service.GetStoredMetrics(domain.EntityTypeCampaign, "111", "", "")
		require.NoError(t, err)
		require.Len(t, metrics, 1)
	})
}
