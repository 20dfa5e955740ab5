package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/internal/config"
	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting"
)

var ErrSyncRunning = errors.New("ingestion sync already running")

// IngestionSyncConfig representa a configuração do agendador de ingestão
type IngestionSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// IngestionSyncService relê periodicamente o diretório de dados e atualiza os registros de receita
type IngestionSyncService struct {
	scheduler           *gocron.Scheduler
	config              IngestionSyncConfig
	ingestionService    ingesting.IngestionService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.IngestionResult
}

func NewIngestionSyncService(ingestionService ingesting.IngestionService, appConfig *config.Config) *IngestionSyncService {
	syncConfig := IngestionSyncConfig{
		CronSchedule:      appConfig.IngestionSync.CronSchedule,
		MaxConcurrentJobs: appConfig.IngestionSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.IngestionSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão carregada")

	return &IngestionSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		ingestionService: ingestionService,
	}
}

// Start agenda a sincronização e para o agendador quando o contexto é cancelado
func (s *IngestionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de ingestão desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Sync(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização agendada de ingestão")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de ingestão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync ingere todos os arquivos do diretório de dados com um mesmo lote e remove as
// origens cujos arquivos sumiram. Falhas por arquivo ficam no relatório e não abortam o lote.
func (s *IngestionSyncService) Sync(ctx context.Context) (*domain.IngestionResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de ingestão já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	files, err := s.ingestionService.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar arquivos de dados: %w", err)
	}

	batchID, err := s.ingestionService.NewBatchID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar lote de ingestão: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"files":    len(files),
	}).Info("Iniciando sincronização de ingestão")

	result := &domain.IngestionResult{
		BatchID:   batchID,
		StartedAt: startTime,
		Files:     s.processFiles(ctx, files, batchID),
	}
	for _, report := range result.Files {
		result.Records += report.Records
	}

	removed, err := s.ingestionService.PruneMissing(ctx, files)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover origens ausentes do diretório de dados")
	}

	result.FinishedAt = time.Now()

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = result.FinishedAt
	s.lastResult = result
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"batch_id":        batchID,
		"duration":        result.FinishedAt.Sub(startTime).String(),
		"files":           len(files),
		"records":         result.Records,
		"removed_sources": removed,
	}).Info("Sincronização de ingestão concluída")

	return result, nil
}

// processFiles ingere os arquivos em paralelo, limitado por MaxConcurrentJobs.
// Os relatórios mantêm a ordem dos arquivos.
func (s *IngestionSyncService) processFiles(ctx context.Context, files []domain.DataFile, batchID string) []domain.FileReport {
	reports := make([]domain.FileReport, len(files))
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, file domain.DataFile) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			report, err := s.ingestionService.IngestFile(ctx, file.Name, batchID)
			if report.Name == "" {
				report.Name = file.Name
			}
			if err != nil {
				if report.Error == "" {
					report.Error = err.Error()
				}
				logrus.WithError(err).WithFields(logrus.Fields{
					"file":     file.Name,
					"batch_id": batchID,
				}).Error("Erro ao ingerir arquivo")
			}
			reports[i] = report
		}(i, file)
	}

	wg.Wait()
	return reports
}

// TriggerManualSync inicia manualmente uma sincronização em segundo plano
func (s *IngestionSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de ingestão já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de ingestão")
	go func() {
		if _, err := s.Sync(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual de ingestão")
		}
	}()
	return true
}

// GetStatus retorna o status atual da sincronização
func (s *IngestionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_batch_id"] = s.lastResult.BatchID
		status["last_records"] = s.lastResult.Records
		status["last_files"] = len(s.lastResult.Files)
	}
	return status
}
