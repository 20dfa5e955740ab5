package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/decision-report-api/infrastructure/ingestion"
	"github.com/vfg2006/decision-report-api/infrastructure/repository"
	"github.com/vfg2006/decision-report-api/internal/api"
	"github.com/vfg2006/decision-report-api/internal/api/handler"
	"github.com/vfg2006/decision-report-api/internal/config"
	"github.com/vfg2006/decision-report-api/internal/scheduler"
	"github.com/vfg2006/decision-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting"
	"github.com/vfg2006/decision-report-api/internal/usecases/reporting"
	"github.com/vfg2006/decision-report-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.Env, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		recordRepo repository.RevenueRecordRepository
		reportRepo repository.ReportRepository
	)
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		recordRepo = repository.NewRevenueRecordRepository(pgConn)
		reportRepo = repository.NewReportRepository(pgConn)
	} else {
		logrus.Info("Banco de dados desabilitado, registros mantidos em memória")
		recordRepo = repository.NewMemoryRevenueRecordRepository()
		reportRepo = repository.NewMemoryReportRepository()
	}

	loader := ingestion.NewLoader(
		ingestion.DefaultColumnMatcher(),
		cfg.Ingestion.Passwords,
		cfg.Ingestion.Extensions,
	)

	authenticator := authenticating.NewService(cfg.Auth)
	ingestionService := ingesting.NewService(loader, recordRepo, cfg.Ingestion.DataDir)
	reportingService := reporting.NewService(recordRepo, reportRepo, cfg.ToPolicy())

	ingestionSyncService := scheduler.NewIngestionSyncService(ingestionService, cfg)

	// carga inicial do diretório de dados antes de atender requisições
	if result, err := ingestionSyncService.Sync(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do diretório de dados")
	} else {
		logrus.WithFields(logrus.Fields{
			"batch_id": result.BatchID,
			"files":    len(result.Files),
			"records":  result.Records,
		}).Info("Carga inicial concluída")
	}

	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão")
	}

	h := api.NewHandler(cfg, authenticator, ingestionService, reportingService, handler.CronJobServices{
		handler.CronJobTypeIngestion: ingestionSyncService,
	})

	if err := api.New(cfg, h).Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
