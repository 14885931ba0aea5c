package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/revoa-app/support-api/internal/config"
)

// CheckoutSession é a sessão de checkout como retornada pela API do Stripe
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type Client interface {
	CreateCheckoutSession(priceID string, quantity int64, successURL, cancelURL string) (*CheckoutSession, error)
}

type StripeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// CreateCheckoutSession cria uma sessão de checkout no modo subscription.
// A API do Stripe recebe o corpo como formulário, não como JSON.
func (c *StripeClient) CreateCheckoutSession(priceID string, quantity int64, successURL, cancelURL string) (*CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", strconv.FormatInt(quantity, 10))
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	endpoint := fmt.Sprintf("%s/v1/checkout/sessions", c.config.Stripe.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Stripe.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var stripeErr stripeError
		if err := json.Unmarshal(body, &stripeErr); err == nil && stripeErr.Error.Message != "" {
			return nil, fmt.Errorf("erro da API do Stripe: %s", stripeErr.Error.Message)
		}
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a sessão: %w", err)
	}

	return &session, nil
}
