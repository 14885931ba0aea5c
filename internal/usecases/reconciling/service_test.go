package reconciling

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/revoa-app/support-api/infrastructure/repository/mocks"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubFetcherFactory struct {
	fetch domain.MetricsFetcher
}

func (f *stubFetcherFactory) FetcherFor(accessToken string) domain.MetricsFetcher {
	return f.fetch
}

func newTestService(t *testing.T) (*Service, *mocks.MockStatusChangeLogRepository, *mocks.MockEntityMetricRepository, *mocks.MockAdAccountRepository) {
	ctrl := gomock.NewController(t)

	statusChangeRepo := mocks.NewMockStatusChangeLogRepository(ctrl)
	metricRepo := mocks.NewMockEntityMetricRepository(ctrl)
	accountRepo := mocks.NewMockAdAccountRepository(ctrl)

	cfg := &config.Config{}
	cfg.FinalSyncSafety.LookbackDays = 7

	service := NewService(cfg, statusChangeRepo, metricRepo, accountRepo, nil)
	service.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	return service, statusChangeRepo, metricRepo, accountRepo
}

func entry(logID, adAccountID, platformEntityID string, entityType domain.EntityType) *domain.StatusChangeEntry {
	return &domain.StatusChangeEntry{
		LogID:            logID,
		AdAccountID:      adAccountID,
		Platform:         domain.PlatformFacebook,
		EntityType:       entityType,
		EntityID:         "internal-" + platformEntityID,
		PlatformEntityID: platformEntityID,
		OldStatus:        domain.StatusActive,
		NewStatus:        domain.StatusPaused,
		CreatedAt:        time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
	}
}

func metricFor(entityID string, day int) *domain.EntityMetric {
	return &domain.EntityMetric{
		EntityID:    entityID,
		Date:        time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Impressions: 100,
		Clicks:      10,
		Spend:       5.0,
	}
}

func TestGetEntitiesNeedingFinalSync(t *testing.T) {
	t.Run("deve devolver lista vazia quando a consulta falha", func(t *testing.T) {
		service, statusChangeRepo, _, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return(nil, errors.New("conexão recusada"))

		entries := service.GetEntitiesNeedingFinalSync("ACC001", nil)
		require.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("deve repassar o filtro de tipo de entidade", func(t *testing.T) {
		service, statusChangeRepo, _, _ := newTestService(t)

		entityType := domain.EntityTypeCampaign
		expected := []*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", &entityType).
			Return(expected, nil)

		entries := service.GetEntitiesNeedingFinalSync("ACC001", &entityType)
		assert.Equal(t, expected, entries)
	})
}

func TestProcessAllPendingFinalSyncs(t *testing.T) {
	t.Run("deve retornar sucesso imediato sem entidades pendentes", func(t *testing.T) {
		service, statusChangeRepo, _, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return([]*domain.StatusChangeEntry{}, nil)

		fetchCalled := false
		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			fetchCalled = true
			return nil, nil
		}

		summary := service.ProcessAllPendingFinalSyncs("ACC001", fetch, nil)
		assert.True(t, summary.Success)
		assert.Zero(t, summary.EntitiesProcessed)
		assert.Empty(t, summary.Errors)
		assert.False(t, fetchCalled)
	})

	t.Run("deve concluir com sucesso quando a entidade não tem métricas no intervalo", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}, nil)

		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Len(0)).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil)

		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			return []*domain.EntityMetric{}, nil
		}

		summary := service.ProcessAllPendingFinalSyncs("ACC001", fetch, nil)
		assert.True(t, summary.Success)
		assert.Equal(t, 1, summary.EntitiesProcessed)
		assert.Zero(t, summary.MetricsCollected)
		assert.Empty(t, summary.Errors)
	})

	t.Run("deve isolar a falha de uma entidade sem abortar as demais", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, _ := newTestService(t)

		entries := []*domain.StatusChangeEntry{
			entry("log-1", "ACC001", "111", domain.EntityTypeCampaign),
			entry("log-2", "ACC001", "222", domain.EntityTypeAdSet),
			entry("log-3", "ACC001", "333", domain.EntityTypeAd),
		}

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return(entries, nil)

		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Any()).Return(nil).Times(2)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-2", false, gomock.Not(gomock.Nil())).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-3", true, nil).Return(nil)

		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			if platformEntityID == "222" {
				return nil, errors.New("limite de requisições atingido")
			}
			return []*domain.EntityMetric{metricFor(platformEntityID, 10), metricFor(platformEntityID, 11)}, nil
		}

		summary := service.ProcessAllPendingFinalSyncs("ACC001", fetch, nil)
		assert.False(t, summary.Success)
		assert.Equal(t, 3, summary.EntitiesProcessed)
		assert.Equal(t, 4, summary.MetricsCollected)
		require.Len(t, summary.Errors, 1)
		assert.Equal(t, "adset 222: limite de requisições atingido", summary.Errors[0])
	})

	t.Run("deve marcar a entidade como pendente quando a persistência falha", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}, nil)

		metricRepo.EXPECT().
			SaveMetricsAtomic(gomock.Any()).
			Return(errors.New("deadlock detectado"))

		statusChangeRepo.EXPECT().
			MarkFinalSyncCompleted("log-1", false, gomock.Not(gomock.Nil())).
			Return(nil)

		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			return []*domain.EntityMetric{metricFor(platformEntityID, 10)}, nil
		}

		summary := service.ProcessAllPendingFinalSyncs("ACC001", fetch, nil)
		assert.False(t, summary.Success)
		require.Len(t, summary.Errors, 1)
		assert.Contains(t, summary.Errors[0], "campaign 111")
		assert.Contains(t, summary.Errors[0], "deadlock detectado")
	})

	t.Run("deve preencher o tipo de entidade nas métricas persistidas", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeAdSet)}, nil)

		metricRepo.EXPECT().
			SaveMetricsAtomic(gomock.Any()).
			DoAndReturn(func(metrics []*domain.EntityMetric) error {
				require.Len(t, metrics, 1)
				assert.Equal(t, domain.EntityTypeAdSet, metrics[0].EntityType)
				return nil
			})

		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil)

		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			return []*domain.EntityMetric{metricFor(platformEntityID, 10)}, nil
		}

		service.ProcessAllPendingFinalSyncs("ACC001", fetch, nil)
	})

	t.Run("deve usar o intervalo explícito quando informado", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}, nil)

		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Any()).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil)

		dateRange := &domain.DateRange{
			Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		}

		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			assert.Equal(t, dateRange.Start, startDate)
			assert.Equal(t, dateRange.End, endDate)
			return []*domain.EntityMetric{}, nil
		}

		service.ProcessAllPendingFinalSyncs("ACC001", fetch, dateRange)
	})

	t.Run("deve usar a janela da mudança de status até hoje por padrão", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, _ := newTestService(t)

		pendingEntry := entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)

		statusChangeRepo.EXPECT().
			ListPendingFinalSync("ACC001", nil).
			Return([]*domain.StatusChangeEntry{pendingEntry}, nil)

		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Any()).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil)

		fetch := func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
			assert.Equal(t, pendingEntry.CreatedAt, startDate)
			assert.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), endDate)
			return []*domain.EntityMetric{}, nil
		}

		service.ProcessAllPendingFinalSyncs("ACC001", fetch, nil)
	})
}

func TestRunSafetyNetSweep(t *testing.T) {
	t.Run("deve retornar erro quando a listagem inicial falha", func(t *testing.T) {
		service, statusChangeRepo, _, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSyncAllAccounts().
			Return(nil, errors.New("conexão recusada"))

		summary, err := service.RunSafetyNetSweep()
		require.Error(t, err)
		assert.Nil(t, summary)
	})

	t.Run("deve concluir com sucesso sem pendências", func(t *testing.T) {
		service, statusChangeRepo, _, _ := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSyncAllAccounts().
			Return([]*domain.StatusChangeEntry{}, nil)

		summary, err := service.RunSafetyNetSweep()
		require.NoError(t, err)
		assert.True(t, summary.Success)
		assert.Zero(t, summary.AccountsProcessed)
		assert.Empty(t, summary.Errors)
	})

	t.Run("deve isolar a conta sem credencial e processar as demais", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, accountRepo := newTestService(t)

		service.fetcherFactory = &stubFetcherFactory{
			fetch: func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
				return []*domain.EntityMetric{metricFor(platformEntityID, 10)}, nil
			},
		}

		statusChangeRepo.EXPECT().
			ListPendingFinalSyncAllAccounts().
			Return([]*domain.StatusChangeEntry{
				entry("log-1", "ACC001", "111", domain.EntityTypeCampaign),
				entry("log-2", "ACC002", "222", domain.EntityTypeCampaign),
			}, nil)

		accountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(&domain.AdAccount{ID: "ACC001", Name: "Loja A", Platform: domain.PlatformFacebook}, nil)
		accountRepo.EXPECT().
			GetCredential("ACC001", domain.PlatformFacebook).
			Return(nil, nil)

		accountRepo.EXPECT().
			GetAccountByID("ACC002").
			Return(&domain.AdAccount{ID: "ACC002", Name: "Loja B", Platform: domain.PlatformFacebook}, nil)
		accountRepo.EXPECT().
			GetCredential("ACC002", domain.PlatformFacebook).
			Return(&domain.PlatformCredential{AccountID: "ACC002", Platform: domain.PlatformFacebook, AccessToken: "token-b"}, nil)

		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Any()).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-2", true, nil).Return(nil)

		summary, err := service.RunSafetyNetSweep()
		require.NoError(t, err)
		assert.False(t, summary.Success)
		assert.Equal(t, 1, summary.AccountsProcessed)
		assert.Equal(t, 1, summary.TotalEntities)
		assert.Equal(t, 1, summary.TotalMetrics)
		require.Len(t, summary.Errors, 1)
		assert.Contains(t, summary.Errors[0], "Loja A")
		assert.Contains(t, summary.Errors[0], "credencial")
	})

	t.Run("deve rejeitar credencial expirada com o nome da conta no erro", func(t *testing.T) {
		service, statusChangeRepo, _, accountRepo := newTestService(t)

		statusChangeRepo.EXPECT().
			ListPendingFinalSyncAllAccounts().
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}, nil)

		accountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(&domain.AdAccount{ID: "ACC001", Name: "Loja A", Platform: domain.PlatformFacebook}, nil)
		accountRepo.EXPECT().
			GetCredential("ACC001", domain.PlatformFacebook).
			Return(&domain.PlatformCredential{
				AccountID:   "ACC001",
				Platform:    domain.PlatformFacebook,
				AccessToken: "token-a",
				ExpiresAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}, nil)

		summary, err := service.RunSafetyNetSweep()
		require.NoError(t, err)
		assert.False(t, summary.Success)
		assert.Zero(t, summary.AccountsProcessed)
		require.Len(t, summary.Errors, 1)
		assert.Equal(t, "Loja A: credencial expirada", summary.Errors[0])
	})

	t.Run("deve usar a janela retroativa configurada", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, accountRepo := newTestService(t)

		service.fetcherFactory = &stubFetcherFactory{
			fetch: func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
				assert.Equal(t, time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC), startDate)
				assert.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), endDate)
				return []*domain.EntityMetric{}, nil
			},
		}

		statusChangeRepo.EXPECT().
			ListPendingFinalSyncAllAccounts().
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}, nil)

		accountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(&domain.AdAccount{ID: "ACC001", Name: "Loja A", Platform: domain.PlatformFacebook}, nil)
		accountRepo.EXPECT().
			GetCredential("ACC001", domain.PlatformFacebook).
			Return(&domain.PlatformCredential{AccountID: "ACC001", Platform: domain.PlatformFacebook, AccessToken: "token-a"}, nil)

		metricRepo.EXPECT().SaveMetricsAtomic(gomock.Any()).Return(nil)
		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil)

		summary, err := service.RunSafetyNetSweep()
		require.NoError(t, err)
		assert.True(t, summary.Success)
	})

	t.Run("deve ser idempotente reprocessando a mesma janela", func(t *testing.T) {
		service, statusChangeRepo, metricRepo, accountRepo := newTestService(t)

		// Armazenamento fake com upsert pela chave (tipo, entidade, data)
		saved := map[string]*domain.EntityMetric{}

		service.fetcherFactory = &stubFetcherFactory{
			fetch: func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
				return []*domain.EntityMetric{metricFor(platformEntityID, 10), metricFor(platformEntityID, 11)}, nil
			},
		}

		statusChangeRepo.EXPECT().
			ListPendingFinalSyncAllAccounts().
			Return([]*domain.StatusChangeEntry{entry("log-1", "ACC001", "111", domain.EntityTypeCampaign)}, nil).
			Times(2)

		accountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(&domain.AdAccount{ID: "ACC001", Name: "Loja A", Platform: domain.PlatformFacebook}, nil).
			Times(2)
		accountRepo.EXPECT().
			GetCredential("ACC001", domain.PlatformFacebook).
			Return(&domain.PlatformCredential{AccountID: "ACC001", Platform: domain.PlatformFacebook, AccessToken: "token-a"}, nil).
			Times(2)

		metricRepo.EXPECT().
			SaveMetricsAtomic(gomock.Any()).
			DoAndReturn(func(metrics []*domain.EntityMetric) error {
				for _, metric := range metrics {
					key := fmt.Sprintf("%s|%s|%s", metric.EntityType, metric.EntityID, metric.Date.Format(time.DateOnly))
					saved[key] = metric
				}
				return nil
			}).
			Times(2)

		statusChangeRepo.EXPECT().MarkFinalSyncCompleted("log-1", true, nil).Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			summary, err := service.RunSafetyNetSweep()
			require.NoError(t, err)
			assert.True(t, summary.Success)
		}

		// Duas execuções sobre a mesma janela não duplicam linhas
		assert.Len(t, saved, 2)
	})
}
