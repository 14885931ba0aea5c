package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revoa-app/support-api/internal/scheduler"
	"github.com/revoa-app/support-api/internal/usecases/reconciling"
	"github.com/revoa-app/support-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job disparáveis manualmente
const (
	CronJobTypeFinalSyncSafetyNet = "final-sync-safety-net"
)

// CronJobServices contém os serviços necessários para executar crons manualmente
type CronJobServices struct {
	SafetyNetService *scheduler.FinalSyncSafetyNetService
	Reconciler       reconciling.Reconciler
}

// RunCronJob executa manualmente uma cron job específica. A varredura de
// segurança de final sync roda de forma síncrona e devolve o resumo completo.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeFinalSyncSafetyNet:
			if services.Reconciler == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconciliação não disponível", nil)
				return
			}

			summary, err := services.Reconciler.RunSafetyNetSweep()
			if err != nil {
				logrus.WithError(err).Error("cron: varredura de segurança não pôde iniciar")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if err := json.NewEncoder(w).Encode(summary); err != nil {
				logrus.WithError(err).Error("cron: erro ao serializar o resumo da varredura")
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido: "+cronType, nil)
		}
	})
}

// GetCronStatus retorna o status dos agendadores registrados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.SafetyNetService != nil {
			status["final_sync_safety_net"] = services.SafetyNetService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: erro ao serializar o status dos agendadores")
		}
	})
}
