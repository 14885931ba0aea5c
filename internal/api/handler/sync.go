package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/syncing"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/revoa-app/support-api/pkg/log"
)

// SyncAdAccount dispara a sincronização incremental de uma conta de anúncios.
// A reconciliação de final syncs pendentes roda antes da coleta regular.
func SyncAdAccount(service syncing.AccountSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("ad_account_id", id).Info("account_sync: iniciando sincronização da conta")

		var request domain.AccountSyncRequest
		body, err := io.ReadAll(r.Body)
		if err == nil && len(body) > 0 {
			if err := json.Unmarshal(body, &request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		response, err := service.SyncAccount(id, &request)
		if err != nil {
			writeSyncError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("account_sync: erro ao serializar a resposta")
		}
	})
}

func writeSyncError(w http.ResponseWriter, logger log.Logger, adAccountID string, err error) {
	logger.WithFields(log.Fields{
		"ad_account_id": adAccountID,
		"error":         err.Error(),
	}).Error("account_sync: falha na sincronização da conta")

	switch {
	case errors.Is(err, syncing.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, syncing.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, syncing.ErrCredentialMissing):
		apiErrors.WriteError(w, apiErrors.ErrCredentialMissing, err.Error(), nil)
	case errors.Is(err, syncing.ErrCredentialExpired):
		apiErrors.WriteError(w, apiErrors.ErrCredentialExpired, err.Error(), nil)
	case errors.Is(err, syncing.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
