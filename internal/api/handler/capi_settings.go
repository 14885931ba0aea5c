package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/settings"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/revoa-app/support-api/pkg/log"
)

// GetCapiSettings retorna a configuração de CAPI da loja
func GetCapiSettings(service settings.StoreSettingsManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		capiSettings, err := service.GetCapiSettings(storeID)
		if err != nil {
			writeSettingsError(w, logger, err)
			return
		}

		if capiSettings == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Configuração de CAPI não encontrada", nil)
			return
		}

		writeJSON(w, logger, capiSettings)
	})
}

// SaveCapiSettings cria ou atualiza a configuração de CAPI da loja
func SaveCapiSettings(service settings.StoreSettingsManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var capiSettings domain.CapiSettings
		if err := json.NewDecoder(r.Body).Decode(&capiSettings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		capiSettings.StoreID = storeID

		if err := service.SaveCapiSettings(&capiSettings); err != nil {
			writeSettingsError(w, logger, err)
			return
		}

		writeJSON(w, logger, capiSettings)
	})
}
