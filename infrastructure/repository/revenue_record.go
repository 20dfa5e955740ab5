// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/decision-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

const (
	revenueRecordsTable = "revenue_records"
	insertChunkSize     = 500
)

type RevenueRecordRepository interface {
	// ReplaceSource troca atomicamente todos os registros de uma origem
	ReplaceSource(ctx context.Context, source, batchID string, records []domain.RevenueRecord) error
	ListAll(ctx context.Context) ([]domain.RevenueRecord, error)
	CountBySource(ctx context.Context) (map[string]int, error)
}

type revenueRecordRepository struct {
	conn *postgres.Connection
}

func NewRevenueRecordRepository(conn *postgres.Connection) RevenueRecordRepository {
	return &revenueRecordRepository{
		conn: conn,
	}
}

func (r *revenueRecordRepository) ReplaceSource(ctx context.Context, source, batchID string, records []domain.RevenueRecord) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(revenueRecordsTable).
		Where(squirrel.Eq{"source": source}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	inserts, err := buildRevenueInserts(source, batchID, records)
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover registros da origem %s: %w", source, err)
		}
		for _, insert := range inserts {
			if _, err := tx.ExecContext(ctx, insert.sql, insert.args...); err != nil {
				return fmt.Errorf("erro ao inserir registros da origem %s: %w", source, err)
			}
		}
		return nil
	})
}

func (r *revenueRecordRepository) ListAll(ctx context.Context) ([]domain.RevenueRecord, error) {
	query, args, err := squirrel.
		Select("id", "source", "occurred_at", "amount", "year", "month").
		From(revenueRecordsTable).
		OrderBy("occurred_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RevenueRecord, 0)
	for rows.Next() {
		var rec domain.RevenueRecord
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Timestamp, &rec.Amount, &rec.DerivedYear, &rec.DerivedMonth); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		rec.Timestamp = rec.Timestamp.UTC()
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *revenueRecordRepository) CountBySource(ctx context.Context) (map[string]int, error) {
	query, args, err := squirrel.
		Select("source", "COUNT(*)").
		From(revenueRecordsTable).
		GroupBy("source").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem: %w", err)
		}
		counts[source] = count
	}

	return counts, rows.Err()
}

type statement struct {
	sql  string
	args []interface{}
}

// buildRevenueInserts divide a inserção em lotes para não estourar o limite de parâmetros do Postgres
func buildRevenueInserts(source, batchID string, records []domain.RevenueRecord) ([]statement, error) {
	var statements []statement
	for start := 0; start < len(records); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(records) {
			end = len(records)
		}

		query := squirrel.
			Insert(revenueRecordsTable).
			Columns("id", "batch_id", "source", "occurred_at", "amount", "year", "month").
			PlaceholderFormat(squirrel.Dollar)

		for _, rec := range records[start:end] {
			query = query.Values(rec.ID, batchID, source, rec.Timestamp.UTC(), rec.Amount, rec.DerivedYear, rec.DerivedMonth)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
		}
		statements = append(statements, statement{sql: sqlQuery, args: args})
	}
	return statements, nil
}
