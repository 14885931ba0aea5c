package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/supporting"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/revoa-app/support-api/pkg/log"
)

func orderParams(r *http.Request) (string, string) {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("id"), params.ByName("order_id")
}

func writeOrderError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("support: operação sobre pedido falhou")

	switch {
	case errors.Is(err, supporting.ErrStoreIDRequired), errors.Is(err, supporting.ErrOrderIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, supporting.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, supporting.ErrStoreDisconnected):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, supporting.ErrInvalidRefund):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao serializar a resposta")
	}
}

// GetOrder busca um pedido da loja na Admin API do Shopify
func GetOrder(service supporting.OrderSupporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID, orderID := orderParams(r)

		order, err := service.GetOrder(storeID, orderID)
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		writeJSON(w, logger, order)
	})
}

// CancelOrder cancela um pedido da loja
func CancelOrder(service supporting.OrderSupporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID, orderID := orderParams(r)

		logger.WithFields(log.Fields{
			"store_id": storeID,
			"order_id": orderID,
		}).Info("support: cancelando pedido")

		order, err := service.CancelOrder(storeID, orderID)
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		writeJSON(w, logger, order)
	})
}

// RefundOrder cria um reembolso para um pedido da loja
func RefundOrder(service supporting.OrderSupporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID, orderID := orderParams(r)

		var request domain.RefundOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"store_id": storeID,
			"order_id": orderID,
			"amount":   request.Amount,
		}).Info("support: criando reembolso")

		refund, err := service.RefundOrder(storeID, orderID, &request)
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		writeJSON(w, logger, refund)
	})
}

// UpdateShippingAddress atualiza o endereço de entrega de um pedido
func UpdateShippingAddress(service supporting.OrderSupporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID, orderID := orderParams(r)

		var request domain.ShippingAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		order, err := service.UpdateShippingAddress(storeID, orderID, &request)
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		writeJSON(w, logger, order)
	})
}
