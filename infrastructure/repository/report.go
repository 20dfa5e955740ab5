package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/decision-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportsTable = "decision_reports"

var ErrReportNotFound = errors.New("report not found")

type ReportRepository interface {
	Save(ctx context.Context, report *domain.DecisionReport) error
	GetByID(ctx context.Context, id string) (*domain.DecisionReport, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ReportSummary, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) Save(ctx context.Context, report *domain.DecisionReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	query, args, err := squirrel.
		Insert(reportsTable).
		Columns("id", "created_at", "recommendation", "payload").
		Values(report.ID, report.CreatedAt, string(report.Decision.Recommendation), payload).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar relatório: %w", err)
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.DecisionReport, error) {
	query, args, err := squirrel.
		Select("payload").
		From(reportsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("erro ao buscar relatório: %w", err)
	}

	report := &domain.DecisionReport{}
	if err := json.Unmarshal(payload, report); err != nil {
		return nil, fmt.Errorf("erro ao desserializar relatório: %w", err)
	}
	return report, nil
}

func (r *reportRepository) ListRecent(ctx context.Context, limit int) ([]domain.ReportSummary, error) {
	builder := squirrel.
		Select("id", "created_at", "recommendation").
		From(reportsTable).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.ReportSummary, 0)
	for rows.Next() {
		var s domain.ReportSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Recommendation); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
