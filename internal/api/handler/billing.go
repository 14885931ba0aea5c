package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/billing"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/revoa-app/support-api/pkg/log"
)

// CreateCheckoutSession cria uma sessão de checkout de assinatura no Stripe
func CreateCheckoutSession(service billing.CheckoutManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.CheckoutSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		session, err := service.CreateCheckoutSession(&request)
		if err != nil {
			logger.WithError(err).Error("billing: falha ao criar sessão de checkout")

			if errors.Is(err, billing.ErrInvalidCheckoutRequest) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		writeJSON(w, logger, session)
	})
}
