package shopifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	shopifydomain "github.com/revoa-app/support-api/infrastructure/integrator/shopify/domain"
	"github.com/revoa-app/support-api/internal/config"
)

// StoreCredentials identifica a loja e o token usados em cada chamada à Admin API
type StoreCredentials struct {
	ShopDomain  string
	AccessToken string
}

type Client interface {
	GetOrder(creds StoreCredentials, orderID string) (*shopifydomain.Order, error)
	CancelOrder(creds StoreCredentials, orderID string) (*shopifydomain.Order, error)
	RefundOrder(creds StoreCredentials, orderID string, amount float64, currency, note string, notify bool) (*shopifydomain.Refund, error)
	UpdateShippingAddress(creds StoreCredentials, orderID string, address *shopifydomain.ShippingAddress) (*shopifydomain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// buildURL monta a URL da Admin API para o recurso informado
func (c *ShopifyClient) buildURL(creds StoreCredentials, resource string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/%s", creds.ShopDomain, c.config.Shopify.APIVersion, resource)
}

// doRequest executa uma chamada autenticada à Admin API e devolve o corpo da
// resposta. Erros da API viram mensagens com o status e o corpo retornado.
func (c *ShopifyClient) doRequest(method, url string, creds StoreCredentials, payload interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", creds.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, string(respBody))
	}

	return respBody, nil
}
