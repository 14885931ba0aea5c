package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/internal/usecases/settings"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/revoa-app/support-api/pkg/log"
)

func writeSettingsError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("settings: operação falhou")

	switch {
	case errors.Is(err, settings.ErrStoreIDRequired), errors.Is(err, settings.ErrTemplateIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, settings.ErrTemplateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, settings.ErrInvalidTemplate), errors.Is(err, settings.ErrInvalidCapiConfig):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}

// ListEmailTemplates lista os modelos de e-mail de uma loja
func ListEmailTemplates(service settings.StoreSettingsManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		templates, err := service.ListEmailTemplates(storeID)
		if err != nil {
			writeSettingsError(w, logger, err)
			return
		}

		writeJSON(w, logger, templates)
	})
}

// CreateEmailTemplate cria um modelo de e-mail para a loja
func CreateEmailTemplate(service settings.StoreSettingsManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var template domain.EmailTemplate
		if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		template.StoreID = storeID

		created, err := service.CreateEmailTemplate(&template)
		if err != nil {
			writeSettingsError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("settings: erro ao serializar a resposta")
		}
	})
}

// UpdateEmailTemplate atualiza um modelo de e-mail existente
func UpdateEmailTemplate(service settings.StoreSettingsManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		templateID := httprouter.ParamsFromContext(r.Context()).ByName("template_id")

		var template domain.EmailTemplate
		if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		template.ID = templateID

		updated, err := service.UpdateEmailTemplate(&template)
		if err != nil {
			writeSettingsError(w, logger, err)
			return
		}

		writeJSON(w, logger, updated)
	})
}

// DeleteEmailTemplate remove um modelo de e-mail
func DeleteEmailTemplate(service settings.StoreSettingsManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		templateID := httprouter.ParamsFromContext(r.Context()).ByName("template_id")

		if err := service.DeleteEmailTemplate(templateID); err != nil {
			writeSettingsError(w, logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
