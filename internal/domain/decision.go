package domain

// Recommendation é o resultado da comparação comprar x vender
type Recommendation string

const (
	RecommendBuy                 Recommendation = "buy"
	RecommendBuyWithReservations Recommendation = "buy_with_reservations"
	RecommendSellAndInvest       Recommendation = "sell_and_invest"
)

var recommendationLabels = map[Recommendation]string{
	RecommendBuy:                 "Comprar via Consórcio",
	RecommendBuyWithReservations: "Comprar via Consórcio (com ressalvas)",
	RecommendSellAndInvest:       "Vender e Investir",
}

func (r Recommendation) Label() string {
	return recommendationLabels[r]
}

type BuyScenario struct {
	PropertyValue  float64 `json:"property_value"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalCost      float64 `json:"total_cost"`
	BusinessValue  float64 `json:"business_value"`
	NetPosition    float64 `json:"net_position"`
}

type SellScenario struct {
	CurrentInvestments   float64 `json:"current_investments"`
	BusinessSaleValue    float64 `json:"business_sale_value"`
	TotalCapital         float64 `json:"total_capital"`
	PassiveIncomeMonthly float64 `json:"passive_income_monthly"`
	PassiveIncomeYearly  float64 `json:"passive_income_yearly"`
	RiskAssessment       string  `json:"risk_assessment"`
}

// DecisionInput são os parâmetros do motor de recomendação.
// PlanDurationYears e PlanAnnualRate ausentes usam os valores da política.
// Uma taxa zero informada é respeitada (prestação linear).
type DecisionInput struct {
	Analysis          FinancialAnalysis `json:"analysis"`
	TargetPrice       float64           `json:"target_price"`
	LiquidCapital     float64           `json:"liquid_capital"`
	PlanDurationYears *int              `json:"plan_duration_years,omitempty"`
	PlanAnnualRate    *float64          `json:"plan_annual_rate,omitempty"`
}

type DecisionAnalysis struct {
	Financing           FinancingEstimate `json:"financing"`
	BuyScenario         BuyScenario       `json:"buy_scenario"`
	SellScenario        SellScenario      `json:"sell_scenario"`
	Recommendation      Recommendation    `json:"recommendation"`
	RecommendationLabel string            `json:"recommendation_label"`
	Reasoning           []string          `json:"reasoning"`
}
