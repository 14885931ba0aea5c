package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/revoa-app/support-api/internal/api/handler/router"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/syncing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSyncer struct {
	response *domain.AccountSyncResponse
	err      error

	gotAccountID string
	gotRequest   *domain.AccountSyncRequest
}

func (s *stubSyncer) SyncAccount(adAccountID string, request *domain.AccountSyncRequest) (*domain.AccountSyncResponse, error) {
	s.gotAccountID = adAccountID
	s.gotRequest = request
	return s.response, s.err
}

func newSyncRouter(syncer *stubSyncer) router.Router {
	return router.New(router.WithRoutes(AdAccountSync(syncer)...))
}

func TestSyncAdAccount(t *testing.T) {
	t.Run("deve retornar 200 com o resumo da reconciliação embutido", func(t *testing.T) {
		syncer := &stubSyncer{
			response: &domain.AccountSyncResponse{
				Success: true,
				FinalSync: &domain.FinalSyncSummary{
					Success:           true,
					EntitiesProcessed: 2,
					MetricsCollected:  6,
					Errors:            []string{},
				},
				CampaignsSynced:  3,
				MetricsCollected: 21,
				Errors:           []string{},
			},
		}

		rt := newSyncRouter(syncer)

		body := `{"start_date": "2025-06-01", "end_date": "2025-06-07"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/adAccounts/ACC001/sync", strings.NewReader(body))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ACC001", syncer.gotAccountID)
		require.NotNil(t, syncer.gotRequest)
		assert.Equal(t, "2025-06-01", syncer.gotRequest.StartDate)

		var response domain.AccountSyncResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Success)
		require.NotNil(t, response.FinalSync)
		assert.Equal(t, 2, response.FinalSync.EntitiesProcessed)
	})

	t.Run("deve retornar 404 para conta desconhecida", func(t *testing.T) {
		syncer := &stubSyncer{err: syncing.ErrAccountNotFound}

		rt := newSyncRouter(syncer)

		req := httptest.NewRequest(http.MethodPost, "/v1/adAccounts/ACC404/sync", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deve retornar 422 para credencial expirada", func(t *testing.T) {
		syncer := &stubSyncer{err: syncing.ErrCredentialExpired}

		rt := newSyncRouter(syncer)

		req := httptest.NewRequest(http.MethodPost, "/v1/adAccounts/ACC001/sync", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
