// Package analyzing contém o motor de cálculo do relatório de decisão.
// Todas as funções são puras: não fazem I/O, não leem o relógio e nunca retornam erro.
package analyzing

import (
	"sort"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

const defaultTrendWindow = 3

// Aggregate agrupa os registros por ano civil em ordem crescente.
// A média mensal usa a quantidade de registros do ano, não a de meses distintos.
func Aggregate(records []domain.RevenueRecord) []domain.YearlySummary {
	summaries := []domain.YearlySummary{}
	if len(records) == 0 {
		return summaries
	}

	totals := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range records {
		totals[r.DerivedYear] += r.Amount
		counts[r.DerivedYear]++
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	previous := 0.0
	for _, year := range years {
		total := totals[year]
		summary := domain.YearlySummary{
			Year:                  year,
			TotalRevenue:          total,
			AverageMonthlyRevenue: total / float64(counts[year]),
			ObservedMonths:        counts[year],
		}
		if previous > 0 {
			growth := (total - previous) / previous * 100
			summary.GrowthRate = &growth
		}
		summaries = append(summaries, summary)
		previous = total
	}

	return summaries
}

// Project calcula a tendência com a janela padrão de três taxas
func Project(summaries []domain.YearlySummary) domain.Trend {
	return ProjectWindow(summaries, defaultTrendWindow)
}

// ProjectWindow calcula a média das últimas `window` taxas de crescimento definidas
// e projeta a receita do próximo período a partir do último ano.
func ProjectWindow(summaries []domain.YearlySummary, window int) domain.Trend {
	if window <= 0 {
		window = defaultTrendWindow
	}

	var trend domain.Trend
	if len(summaries) == 0 {
		return trend
	}
	trend.LastYearRevenue = summaries[len(summaries)-1].TotalRevenue

	sum, n := 0.0, 0
	for i := len(summaries) - 1; i >= 0 && n < window; i-- {
		if summaries[i].GrowthRate == nil {
			continue
		}
		sum += *summaries[i].GrowthRate
		n++
	}
	if n > 0 {
		trend.GrowthTrend = sum / float64(n)
	}

	trend.ProjectedRevenue = trend.LastYearRevenue * (1 + trend.GrowthTrend/100)
	return trend
}

// Analyze recalcula a visão financeira completa a partir dos registros
func Analyze(records []domain.RevenueRecord) domain.FinancialAnalysis {
	return AnalyzeWindow(records, defaultTrendWindow)
}

func AnalyzeWindow(records []domain.RevenueRecord, window int) domain.FinancialAnalysis {
	summaries := Aggregate(records)
	analysis := domain.FinancialAnalysis{YearlySummaries: summaries}
	if len(summaries) == 0 {
		return analysis
	}

	for _, s := range summaries {
		analysis.TotalRevenue += s.TotalRevenue
	}
	analysis.AverageYearlyRevenue = analysis.TotalRevenue / float64(len(summaries))
	analysis.AverageMonthlyRevenue = analysis.TotalRevenue / float64(len(records))

	trend := ProjectWindow(summaries, window)
	analysis.GrowthTrend = trend.GrowthTrend
	analysis.ProjectedRevenue = trend.ProjectedRevenue
	analysis.LastYearRevenue = trend.LastYearRevenue

	return analysis
}
