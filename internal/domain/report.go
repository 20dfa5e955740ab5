package domain

import "time"

// DecisionReport é o snapshot persistido de uma análise gerada
type DecisionReport struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"created_at"`
	RecordCount int                  `json:"record_count"`
	Analysis    FinancialAnalysis    `json:"analysis"`
	Scenarios   []InvestmentScenario `json:"scenarios,omitempty"`
	Decision    DecisionAnalysis     `json:"decision"`
	Risk        *RiskAssessment      `json:"risk,omitempty"`
}

// ReportSummary é a linha usada na listagem de relatórios
type ReportSummary struct {
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	Recommendation Recommendation `json:"recommendation"`
}
