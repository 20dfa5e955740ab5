package domain

// InvestmentScenario é a projeção de renda passiva para uma taxa anual fixa
type InvestmentScenario struct {
	Label                string  `json:"label"`
	AnnualRate           float64 `json:"annual_rate"`
	InitialCapital       float64 `json:"initial_capital"`
	MonthlyPassiveIncome float64 `json:"monthly_passive_income"`
	YearlyPassiveIncome  float64 `json:"yearly_passive_income"`
	ValueAfter5Years     float64 `json:"value_after_5_years"`
	ValueAfter10Years    float64 `json:"value_after_10_years"`
}
