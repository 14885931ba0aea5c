package fbclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/revoa-app/support-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *FacebookClient {
	cfg := &config.Config{}
	cfg.Facebook.URL = serverURL

	return &FacebookClient{
		Cfg:         cfg,
		HTTPClient:  &http.Client{},
		maxAttempts: 3,
		retryDelay:  0,
	}
}

func TestGetEntityInsights(t *testing.T) {
	t.Run("deve seguir paging.next até esgotar as páginas", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			if r.URL.Query().Get("after") == "page2" {
				fmt.Fprint(w, `{
					"data": [{"date_start": "2025-01-02", "impressions": "50", "clicks": "5", "spend": "2.50", "reach": "40"}],
					"paging": {}
				}`)
				return
			}

			assert.Equal(t, "1", r.URL.Query().Get("time_increment"))
			assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

			fmt.Fprintf(w, `{
				"data": [{"date_start": "2025-01-01", "impressions": "100", "clicks": "10", "spend": "5.00", "reach": "80"}],
				"paging": {"next": "%s/123/insights?after=page2"}
			}`, server.URL)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

		insights, err := client.GetEntityInsights("test-token", "123", start, end)
		require.NoError(t, err)
		require.Len(t, insights, 2)
		assert.Equal(t, "2025-01-01", insights[0].DateStart)
		assert.Equal(t, "2025-01-02", insights[1].DateStart)
	})

	t.Run("deve tentar novamente após resposta 429", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data": [{"date_start": "2025-01-01", "impressions": "1"}], "paging": {}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		insights, err := client.GetEntityInsights("test-token", "123", start, start)
		require.NoError(t, err)
		require.Len(t, insights, 1)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("deve desistir após esgotar as tentativas com throttling", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "User request limit reached", "type": "OAuthException", "code": 17}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := client.GetEntityInsights("test-token", "123", start, start)
		require.Error(t, err)
		assert.ErrorIs(t, err, errRateLimited)
	})

	t.Run("deve retornar erro de token expirado sem tentar novamente", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "Error validating access token", "type": "OAuthException", "code": 190}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := client.GetEntityInsights("test-token", "123", start, start)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token de acesso expirado")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestGetCampaignsByAccountID(t *testing.T) {
	t.Run("deve listar campanhas com o prefixo act_ na URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/act_999/campaigns", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data": [{"id": "111", "name": "Campanha A", "status": "ACTIVE"}], "paging": {}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		campaigns, err := client.GetCampaignsByAccountID("test-token", "999")
		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "Campanha A", campaigns[0].Name)
	})
}
