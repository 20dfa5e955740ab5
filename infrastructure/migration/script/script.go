package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/decision-report-api/internal/config"
)

var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "revenue_records",
		sql: `CREATE TABLE IF NOT EXISTS revenue_records (
	id          VARCHAR(32)      PRIMARY KEY,
	batch_id    VARCHAR(32)      NOT NULL,
	source      TEXT             NOT NULL,
	occurred_at TIMESTAMPTZ      NOT NULL,
	amount      DOUBLE PRECISION NOT NULL CHECK (amount > 0),
	year        INTEGER          NOT NULL,
	month       SMALLINT         NOT NULL CHECK (month BETWEEN 1 AND 12),
	created_at  TIMESTAMPTZ      NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "revenue_records_source_idx",
		sql:  `CREATE INDEX IF NOT EXISTS revenue_records_source_idx ON revenue_records (source)`,
	},
	{
		name: "revenue_records_occurred_at_idx",
		sql:  `CREATE INDEX IF NOT EXISTS revenue_records_occurred_at_idx ON revenue_records (occurred_at)`,
	},
	{
		name: "decision_reports",
		sql: `CREATE TABLE IF NOT EXISTS decision_reports (
	id             VARCHAR(32) PRIMARY KEY,
	created_at     TIMESTAMPTZ NOT NULL,
	recommendation TEXT        NOT NULL,
	payload        JSONB       NOT NULL
)`,
	},
	{
		name: "decision_reports_created_at_idx",
		sql:  `CREATE INDEX IF NOT EXISTS decision_reports_created_at_idx ON decision_reports (created_at DESC)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return err
			}
			logrus.WithField("migration", m.name).Info("Migração aplicada")
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações, nenhuma alteração foi mantida")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}
