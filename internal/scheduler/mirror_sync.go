package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-engine/infrastructure/repository"
	"github.com/vfg2006/ads-report-engine/internal/config"
	"github.com/vfg2006/ads-report-engine/internal/domain"
	"github.com/vfg2006/ads-report-engine/internal/usecases/reporting"
)

// MirrorSyncConfig representa a configuração do agendador de sincronização do
// espelho relacional
type MirrorSyncConfig struct {
	CronSchedule string
	AccountIDs   []string
	DatePreset   string
	SyncEnabled  bool
}

// MirrorSyncService mantém o espelho relacional atualizado: roda o fetch
// hierárquico live para as contas configuradas e grava o snapshot resultante
// nas tabelas do espelho. A estratégia mirror do relatório troca frescor por
// velocidade e por não consumir rate limit por requisição.
type MirrorSyncService struct {
	scheduler           *gocron.Scheduler
	config              MirrorSyncConfig
	liveFetcher         reporting.LiveFetcher
	mirrorRepo          repository.MirrorRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMirrorSyncService cria uma nova instância do serviço de sincronização do
// espelho
func NewMirrorSyncService(
	liveFetcher reporting.LiveFetcher,
	mirrorRepo repository.MirrorRepository,
	appConfig *config.Config,
) *MirrorSyncService {
	syncConfig := MirrorSyncConfig{
		CronSchedule: appConfig.MirrorSync.CronSchedule,
		AccountIDs:   appConfig.MirrorSync.AccountIDs,
		DatePreset:   appConfig.MirrorSync.DatePreset,
		SyncEnabled:  appConfig.MirrorSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"accounts":      len(syncConfig.AccountIDs),
		"date_preset":   syncConfig.DatePreset,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do espelho carregada")

	return &MirrorSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		liveFetcher: liveFetcher,
		mirrorRepo:  mirrorRepo,
	}
}

// Start inicia o agendador
func (s *MirrorSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do espelho desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do espelho")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSync(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização agendada do espelho")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do espelho: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do espelho")
		s.scheduler.Stop()
	}()

	return nil
}

// ErrSyncRunning indica que já existe uma sincronização em andamento
var ErrSyncRunning = fmt.Errorf("sincronização do espelho já em andamento")

// RunSync executa uma sincronização completa do espelho. Uma execução por vez;
// chamadas concorrentes retornam ErrSyncRunning.
func (s *MirrorSyncService) RunSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	if len(s.config.AccountIDs) == 0 {
		logrus.Info("Nenhuma conta configurada para sincronização do espelho")
		return nil
	}

	window := &domain.ReportSpec{DatePreset: s.config.DatePreset}
	startDate, endDate, err := window.DateWindow(time.Now())
	if err != nil {
		return fmt.Errorf("erro ao resolver janela de sincronização: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"accounts":   len(s.config.AccountIDs),
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização do espelho")

	records, err := s.liveFetcher.FetchRecords(ctx, s.config.AccountIDs, startDate, endDate)
	if err != nil {
		return fmt.Errorf("erro ao buscar registros para o espelho: %w", err)
	}

	if err := s.mirrorRepo.UpsertRecords(ctx, records, startDate, endDate); err != nil {
		return fmt.Errorf("erro ao gravar snapshot no espelho: %w", err)
	}

	logrus.WithField("records", len(records)).Info("Sincronização do espelho concluída")
	return nil
}

// Status retorna o estado do agendador para o endpoint de monitoramento
func (s *MirrorSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled": s.config.SyncEnabled,
		"running": s.syncRunning,
	}
	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	return status
}
