package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/usecases/reconciling"
	"github.com/sirupsen/logrus"
)

// FinalSyncSafetyNetConfig representa a configuração da varredura de segurança
type FinalSyncSafetyNetConfig struct {
	CronSchedule string
	LookbackDays int
	SweepEnabled bool
}

// FinalSyncSafetyNetService agenda a varredura periódica que reprocessa final
// syncs pendentes em todas as contas
type FinalSyncSafetyNetService struct {
	scheduler *gocron.Scheduler
	config    FinalSyncSafetyNetConfig
	appConfig *config.Config

	reconciler reconciling.Reconciler

	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

// NewFinalSyncSafetyNetService cria uma nova instância do serviço de varredura
func NewFinalSyncSafetyNetService(
	reconciler reconciling.Reconciler,
	appConfig *config.Config,
) *FinalSyncSafetyNetService {
	sweepConfig := FinalSyncSafetyNetConfig{
		CronSchedule: appConfig.FinalSyncSafety.CronSchedule,
		LookbackDays: appConfig.FinalSyncSafety.LookbackDays,
		SweepEnabled: appConfig.FinalSyncSafety.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       sweepConfig.CronSchedule,
		"sweep_lookback_days": sweepConfig.LookbackDays,
		"sweep_enabled":       sweepConfig.SweepEnabled,
	}).Info("Configuração da varredura de segurança de final sync carregada")

	return &FinalSyncSafetyNetService{
		scheduler:    scheduler,
		config:       sweepConfig,
		appConfig:    appConfig,
		reconciler:   reconciler,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *FinalSyncSafetyNetService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de segurança de final sync desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de segurança de final sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de segurança de final sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de segurança de final sync")
		s.scheduler.Stop()
	}()

	return nil
}

// runSweep executa a varredura garantindo uma execução por vez
func (s *FinalSyncSafetyNetService) runSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de segurança de final sync já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	s.lastSweepStartedAt = time.Now()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de segurança de final sync")

	summary, err := s.reconciler.RunSafetyNetSweep()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar varredura de segurança de final sync")
		return
	}

	s.lastSweepCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"accounts_processed": summary.AccountsProcessed,
		"total_entities":     summary.TotalEntities,
		"total_metrics":      summary.TotalMetrics,
		"errors":             len(summary.Errors),
		"duration":           s.lastSweepCompletedAt.Sub(s.lastSweepStartedAt).String(),
	}).Info("Varredura de segurança de final sync concluída")
}

// TriggerManualSync inicia manualmente a varredura de segurança
func (s *FinalSyncSafetyNetService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de segurança já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de segurança de final sync")
	go s.runSweep()
}

// GetStatus retorna o status atual do agendador
func (s *FinalSyncSafetyNetService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"sweep_lookback_days":     s.config.LookbackDays,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
