package ingestion

import (
	"context"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

// Table é uma aba de planilha (ou um CSV inteiro) com o cabeçalho na primeira linha
type Table struct {
	Name string
	Rows [][]string
}

// Reader decodifica um arquivo em tabelas
type Reader interface {
	Read(ctx context.Context, path string) ([]Table, error)
}

// Extract converte as linhas de uma tabela em registros de receita.
// Linhas sem data ou valor válidos são descartadas e contadas.
func Extract(matcher ColumnMatcher, table Table) (records []domain.RevenueRecord, dropped int, err error) {
	headerRow := -1
	for i, row := range table.Rows {
		if !isBlank(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, 0, ErrColumnsNotFound
	}

	dateIdx, revenueIdx, ok := matcher.Match(table.Rows[headerRow])
	if !ok {
		return nil, 0, ErrColumnsNotFound
	}

	for _, row := range table.Rows[headerRow+1:] {
		if isBlank(row) {
			continue
		}
		if dateIdx >= len(row) || revenueIdx >= len(row) {
			dropped++
			continue
		}

		ts, ok := ParseDate(row[dateIdx])
		if !ok {
			dropped++
			continue
		}
		amount, ok := ParseRevenue(row[revenueIdx])
		if !ok {
			dropped++
			continue
		}

		records = append(records, domain.NewRevenueRecord(ts, amount))
	}

	return records, dropped, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
