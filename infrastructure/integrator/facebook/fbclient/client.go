package fbclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	fbdomain "github.com/revoa-app/support-api/infrastructure/integrator/facebook/domain"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
	defaultPageLimit   = 100
)

var errRateLimited = errors.New("limite de requisições atingido na Graph API")

type Client interface {
	GetEntityInsights(accessToken, platformEntityID string, startDate, endDate time.Time) ([]fbdomain.EntityInsight, error)
	GetCampaignsByAccountID(accessToken, accountExternalID string) ([]fbdomain.Campaign, error)
}

type FacebookClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client

	maxAttempts int
	retryDelay  time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &FacebookClient{
		Cfg:         cfg,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// doRequest executa um GET na Graph API com retry exponencial simples quando a
// resposta indica throttling. Erros que não sejam de limite de requisições são
// retornados imediatamente.
func (c *FacebookClient) doRequest(url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, err := c.get(url)
		if err == nil {
			return body, nil
		}

		if !errors.Is(err, errRateLimited) {
			return nil, err
		}

		lastErr = err
		if attempt < c.maxAttempts {
			delay := c.retryDelay * time.Duration(attempt)
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay.String(),
			}).Warn("Graph API com throttling, aguardando antes de tentar novamente")
			time.Sleep(delay)
		}
	}

	return nil, lastErr
}

func (c *FacebookClient) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errRateLimited
	}

	var errResp fbdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != 0 {
		if errResp.IsRateLimited() {
			return nil, errRateLimited
		}
		if errResp.IsTokenExpired() {
			return nil, fmt.Errorf("token de acesso expirado: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("erro da Graph API (código %d): %s", errResp.Error.Code, errResp.Error.Message)
	}

	return nil, fmt.Errorf("resposta inesperada da Graph API: status %d", resp.StatusCode)
}
