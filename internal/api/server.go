package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/revoa-app/support-api/internal/api/handler"
	"github.com/revoa-app/support-api/internal/api/handler/router"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/scheduler"
	"github.com/revoa-app/support-api/internal/usecases/billing"
	"github.com/revoa-app/support-api/internal/usecases/reconciling"
	"github.com/revoa-app/support-api/internal/usecases/settings"
	"github.com/revoa-app/support-api/internal/usecases/supporting"
	"github.com/revoa-app/support-api/internal/usecases/syncing"
	"github.com/revoa-app/support-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	syncService syncing.AccountSyncer,
	accountReader syncing.AccountReader,
	reconciler reconciling.Reconciler,
	supportService supporting.OrderSupporter,
	settingsService settings.StoreSettingsManager,
	billingService billing.CheckoutManager,
	safetyNetService *scheduler.FinalSyncSafetyNetService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		SafetyNetService: safetyNetService,
		Reconciler:       reconciler,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.AdAccountSync(syncService)...),
		router.WithRoutes(handler.AdAccountReads(accountReader)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithRoutes(handler.Orders(supportService)...),
		router.WithRoutes(handler.EmailTemplates(settingsService)...),
		router.WithRoutes(handler.CapiSettings(settingsService)...),
		router.WithRoutes(handler.Billing(billingService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(config),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// Aqui você pode adicionar operações de limpeza adicionais
	// como fechar conexões com bancos de dados, limpar recursos, etc.

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
