package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/revoa-app/support-api/infrastructure/database/postgres"
	"github.com/revoa-app/support-api/infrastructure/integrator/facebook"
	"github.com/revoa-app/support-api/infrastructure/integrator/facebook/fbclient"
	"github.com/revoa-app/support-api/infrastructure/integrator/shopify"
	"github.com/revoa-app/support-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/revoa-app/support-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/revoa-app/support-api/infrastructure/repository"
	"github.com/revoa-app/support-api/internal/api"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/scheduler"
	"github.com/revoa-app/support-api/internal/usecases/billing"
	"github.com/revoa-app/support-api/internal/usecases/reconciling"
	"github.com/revoa-app/support-api/internal/usecases/settings"
	"github.com/revoa-app/support-api/internal/usecases/supporting"
	"github.com/revoa-app/support-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	statusChangeLogRepo := repository.NewStatusChangeLogRepository(pgConn)
	entityMetricRepo := repository.NewEntityMetricRepository(pgConn)
	adAccountRepo := repository.NewAdAccountRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	emailTemplateRepo := repository.NewEmailTemplateRepository(pgConn)
	capiSettingsRepo := repository.NewCapiSettingsRepository(pgConn)

	facebookClient := fbclient.NewClient(cfg)
	facebookIntegrator := facebook.New(cfg, facebookClient)

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	stripeClient := stripeclient.NewClient(cfg)

	reconciler := reconciling.NewService(
		cfg,
		statusChangeLogRepo,
		entityMetricRepo,
		adAccountRepo,
		facebookIntegrator,
	)

	syncService := syncing.NewService(
		cfg,
		adAccountRepo,
		entityMetricRepo,
		reconciler,
		facebookIntegrator,
	)

	supportService := supporting.NewService(storeRepo, shopifyIntegrator)
	settingsService := settings.NewService(emailTemplateRepo, capiSettingsRepo)
	billingService := billing.NewService(stripeClient)

	// Inicializa o agendador da varredura de segurança de final sync
	safetyNetService := scheduler.NewFinalSyncSafetyNetService(reconciler, cfg)

	if err := safetyNetService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de segurança de final sync")
	} else {
		logrus.Info("Agendador da varredura de segurança de final sync iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		syncService,
		syncService,
		reconciler,
		supportService,
		settingsService,
		billingService,
		safetyNetService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
