package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/config"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

// ConnectivityChecker informa se o armazenamento remoto está alcançável.
type ConnectivityChecker interface {
	Online() bool
}

// SaleAckSyncConfig representa a configuração da varredura de reconhecimento
// de vendas pendentes
type SaleAckSyncConfig struct {
	CronSchedule       string
	SettleDelaySeconds int
	BatchSize          int
	SyncEnabled        bool
}

// SaleAckSyncService gerencia o agendamento da varredura que confirma vendas
// pendentes no armazenamento remoto. Uma venda entra como pending no commit e
// só vira saved quando esta varredura a reconhece.
type SaleAckSyncService struct {
	scheduler           *gocron.Scheduler
	config              SaleAckSyncConfig
	saleRepo            repository.SaleRepository
	connectivity        ConnectivityChecker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSaleAckSyncService cria uma nova instância do serviço de reconhecimento de vendas
func NewSaleAckSyncService(
	saleRepo repository.SaleRepository,
	connectivity ConnectivityChecker,
	appConfig *config.Config,
) *SaleAckSyncService {
	ackConfig := SaleAckSyncConfig{
		CronSchedule:       appConfig.SaleAckSync.CronSchedule,
		SettleDelaySeconds: appConfig.SaleAckSync.SettleDelaySeconds,
		BatchSize:          appConfig.SaleAckSync.BatchSize,
		SyncEnabled:        appConfig.SaleAckSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        ackConfig.CronSchedule,
		"settle_delay_seconds": ackConfig.SettleDelaySeconds,
		"batch_size":           ackConfig.BatchSize,
		"sync_enabled":         ackConfig.SyncEnabled,
	}).Info("Configuração da varredura de reconhecimento de vendas carregada")

	return &SaleAckSyncService{
		scheduler:    scheduler,
		config:       ackConfig,
		saleRepo:     saleRepo,
		connectivity: connectivity,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SaleAckSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de reconhecimento de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconhecimento de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.acknowledgePendingSales()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de reconhecimento de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconhecimento de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// acknowledgePendingSales promove para saved as vendas pendentes já assentadas
// no armazenamento remoto. Vendas recém-gravadas ficam de fora por
// SettleDelaySeconds para não confirmar escrita ainda em voo.
func (s *SaleAckSyncService) acknowledgePendingSales() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de reconhecimento de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runRef, _ := utils.GenerateID()
	logger := logrus.WithField("run_ref", runRef)

	if !s.connectivity.Online() {
		logger.Warn("Armazenamento remoto indisponível, varredura de reconhecimento adiada")
		return
	}

	settledBefore := startTime.Add(-time.Duration(s.config.SettleDelaySeconds) * time.Second)

	acknowledged, err := s.saleRepo.AcknowledgePending(settledBefore, s.config.BatchSize)
	if err != nil {
		logger.WithError(err).Error("Erro ao reconhecer vendas pendentes")
		return
	}

	if acknowledged == 0 {
		logger.Debug("Nenhuma venda pendente para reconhecer")
	} else {
		logger.WithFields(logrus.Fields{
			"acknowledged": acknowledged,
			"duration":     time.Since(startTime).String(),
		}).Info("Vendas pendentes reconhecidas com sucesso")
	}

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma varredura de reconhecimento
func (s *SaleAckSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de reconhecimento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de reconhecimento de vendas")
	go s.acknowledgePendingSales()
}

// GetStatus retorna o status atual do agendador
func (s *SaleAckSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"settle_delay_seconds":   s.config.SettleDelaySeconds,
		"batch_size":             s.config.BatchSize,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
