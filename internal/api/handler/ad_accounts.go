package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/syncing"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/revoa-app/support-api/pkg/log"
)

// ListAdAccounts lista as contas de anúncios ativas conectadas
func ListAdAccounts(service syncing.AccountReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := service.ListAdAccounts()
		if err != nil {
			logger.WithError(err).Error("account_sync: erro ao listar as contas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, logger, accounts)
	})
}

// GetEntityMetrics devolve as métricas diárias gravadas de uma entidade.
// Sem intervalo explícito a janela padrão da coleta incremental é usada.
func GetEntityMetrics(service syncing.AccountReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entityID := httprouter.ParamsFromContext(r.Context()).ByName("entity_id")
		query := r.URL.Query()

		metrics, err := service.GetStoredMetrics(
			domain.EntityType(query.Get("entity_type")),
			entityID,
			query.Get("start_date"),
			query.Get("end_date"),
		)
		if err != nil {
			writeMetricsError(w, logger, entityID, err)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

func writeMetricsError(w http.ResponseWriter, logger log.Logger, entityID string, err error) {
	logger.WithFields(log.Fields{
		"entity_id": entityID,
		"error":     err.Error(),
	}).Error("account_sync: erro ao consultar métricas da entidade")

	switch {
	case errors.Is(err, syncing.ErrInvalidEntityType),
		errors.Is(err, syncing.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, syncing.ErrEntityIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
