package shopifyclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	shopifydomain "github.com/revoa-app/support-api/infrastructure/integrator/shopify/domain"
)

type orderEnvelope struct {
	Order shopifydomain.Order `json:"order"`
}

type refundEnvelope struct {
	Refund shopifydomain.Refund `json:"refund"`
}

func (c *ShopifyClient) GetOrder(creds StoreCredentials, orderID string) (*shopifydomain.Order, error) {
	url := c.buildURL(creds, fmt.Sprintf("orders/%s.json", orderID))

	body, err := c.doRequest(http.MethodGet, url, creds, nil)
	if err != nil {
		return nil, err
	}

	var envelope orderEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o pedido: %w", err)
	}

	return &envelope.Order, nil
}

func (c *ShopifyClient) CancelOrder(creds StoreCredentials, orderID string) (*shopifydomain.Order, error) {
	url := c.buildURL(creds, fmt.Sprintf("orders/%s/cancel.json", orderID))

	body, err := c.doRequest(http.MethodPost, url, creds, map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	var envelope orderEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o pedido cancelado: %w", err)
	}

	return &envelope.Order, nil
}

func (c *ShopifyClient) RefundOrder(creds StoreCredentials, orderID string, amount float64, currency, note string, notify bool) (*shopifydomain.Refund, error) {
	url := c.buildURL(creds, fmt.Sprintf("orders/%s/refunds.json", orderID))

	payload := map[string]interface{}{
		"refund": map[string]interface{}{
			"note":   note,
			"notify": notify,
			"transactions": []map[string]interface{}{
				{
					"kind":     "refund",
					"amount":   fmt.Sprintf("%.2f", amount),
					"currency": currency,
				},
			},
		},
	}

	body, err := c.doRequest(http.MethodPost, url, creds, payload)
	if err != nil {
		return nil, err
	}

	var envelope refundEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o reembolso: %w", err)
	}

	return &envelope.Refund, nil
}

func (c *ShopifyClient) UpdateShippingAddress(creds StoreCredentials, orderID string, address *shopifydomain.ShippingAddress) (*shopifydomain.Order, error) {
	url := c.buildURL(creds, fmt.Sprintf("orders/%s.json", orderID))

	payload := map[string]interface{}{
		"order": map[string]interface{}{
			"id":               orderID,
			"shipping_address": address,
		},
	}

	body, err := c.doRequest(http.MethodPut, url, creds, payload)
	if err != nil {
		return nil, err
	}

	var envelope orderEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o pedido atualizado: %w", err)
	}

	return &envelope.Order, nil
}
