package domain

// InstallmentPlanParams são os parâmetros de um plano de consórcio
type InstallmentPlanParams struct {
	TargetPrice        float64 `json:"target_price"`
	FaceValue          float64 `json:"face_value"`      // valor da carta de crédito
	UpfrontPayment     float64 `json:"upfront_payment"` // lance inicial
	DurationYears      int     `json:"duration_years"`
	AnnualAdminFeeRate float64 `json:"annual_admin_fee_rate"` // percentual, 1.2 = 1,2% a.a.
}

// InstallmentPlanResult é o resultado fechado do cálculo do consórcio
type InstallmentPlanResult struct {
	DurationYears        int     `json:"duration_years"`
	FinancedBalance      float64 `json:"financed_balance"`
	TotalAdminFee        float64 `json:"total_admin_fee"`
	TotalPayable         float64 `json:"total_payable"`
	BaseMonthlyPayment   float64 `json:"base_monthly_payment"`
	MonthlyAdminFee      float64 `json:"monthly_admin_fee"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	NumberOfInstallments int     `json:"number_of_installments"`
	EffectiveAnnualRate  Ratio   `json:"effective_annual_rate"`
}

// FinancingEstimate é a estimativa nocional (tabela Price) usada na comparação comprar x vender
type FinancingEstimate struct {
	PropertyValue        float64 `json:"property_value"`
	DurationYears        int     `json:"duration_years"`
	AnnualRate           float64 `json:"annual_rate"`
	NumberOfInstallments int     `json:"number_of_installments"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	TotalPayable         float64 `json:"total_payable"`
	OpportunityCost      float64 `json:"opportunity_cost"`
}
