package domain

import "time"

// RevenueRecord representa um lançamento de receita já normalizado pela ingestão.
// Registros com valor zero ou negativo nunca chegam até aqui.
type RevenueRecord struct {
	ID           string    `json:"id,omitempty"`
	Source       string    `json:"source,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Amount       float64   `json:"amount"`
	DerivedYear  int       `json:"year"`
	DerivedMonth int       `json:"month"`
}

// NewRevenueRecord cria um registro derivando ano e mês do timestamp em UTC
func NewRevenueRecord(ts time.Time, amount float64) RevenueRecord {
	utc := ts.UTC()
	return RevenueRecord{
		Timestamp:    utc,
		Amount:       amount,
		DerivedYear:  utc.Year(),
		DerivedMonth: int(utc.Month()),
	}
}

// YearlySummary agrega a receita de um ano civil
type YearlySummary struct {
	Year                  int      `json:"year"`
	TotalRevenue          float64  `json:"total_revenue"`
	AverageMonthlyRevenue float64  `json:"average_monthly_revenue"`
	GrowthRate            *float64 `json:"growth_rate"` // nil no primeiro ano observado
	ObservedMonths        int      `json:"observed_months"`
}

// Trend é o resultado da projeção sobre os resumos anuais
type Trend struct {
	GrowthTrend      float64 `json:"growth_trend"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	LastYearRevenue  float64 `json:"last_year_revenue"`
}

// FinancialAnalysis é a visão consolidada de todos os resumos anuais
type FinancialAnalysis struct {
	TotalRevenue          float64         `json:"total_revenue"`
	AverageYearlyRevenue  float64         `json:"average_yearly_revenue"`
	AverageMonthlyRevenue float64         `json:"average_monthly_revenue"`
	YearlySummaries       []YearlySummary `json:"yearly_summaries"`
	GrowthTrend           float64         `json:"growth_trend"`
	ProjectedRevenue      float64         `json:"projected_revenue"`
	LastYearRevenue       float64         `json:"last_year_revenue"`
}

// IsEmpty indica que nenhum registro foi ingerido
func (a FinancialAnalysis) IsEmpty() bool {
	return len(a.YearlySummaries) == 0
}
