package domain

// Policy agrupa as constantes de negócio usadas nos cálculos.
// Taxas são frações anuais (0.04 = 4% a.a.), limites percentuais são em pontos (100 = 100%).
type Policy struct {
	ConservativeRate float64 `json:"conservative_rate"`
	ModerateRate     float64 `json:"moderate_rate"`
	AggressiveRate   float64 `json:"aggressive_rate"`

	RiskyAssetRate      float64 `json:"risky_asset_rate"`
	StableAssetRate     float64 `json:"stable_asset_rate"`
	RiskyAssetFraction  float64 `json:"risky_asset_fraction"`
	StableAssetFraction float64 `json:"stable_asset_fraction"`

	KeepMultiplier  float64 `json:"keep_multiplier"` // múltiplo da receita projetada se o negócio for mantido
	SaleMultiplier  float64 `json:"sale_multiplier"` // múltiplo da receita projetada na venda
	SellPassiveRate float64 `json:"sell_passive_rate"`
	StrongBuyFactor float64 `json:"strong_buy_factor"`

	CoverageLowPct         float64 `json:"coverage_low_pct"`
	CoverageMediumPct      float64 `json:"coverage_medium_pct"`
	DeficitTolerance       float64 `json:"deficit_tolerance"`
	InstallmentCautionPct  float64 `json:"installment_caution_pct"`
	InstallmentHighPct     float64 `json:"installment_high_pct"`
	VolatileShare          float64 `json:"volatile_share"`
	IlliquidShare          float64 `json:"illiquid_share"`
	CapitalSufficiency     float64 `json:"capital_sufficiency"`
	ReferenceMonthlyIncome float64 `json:"reference_monthly_income"`

	TrendWindow      int     `json:"trend_window"`
	DefaultPlanYears int     `json:"default_plan_years"`
	DefaultPlanRate  float64 `json:"default_plan_rate"`
}

func DefaultPolicy() Policy {
	return Policy{
		ConservativeRate:       0.04,
		ModerateRate:           0.06,
		AggressiveRate:         0.08,
		RiskyAssetRate:         0.12,
		StableAssetRate:        0.08,
		RiskyAssetFraction:     0.6,
		StableAssetFraction:    0.4,
		KeepMultiplier:         3,
		SaleMultiplier:         2,
		SellPassiveRate:        0.06,
		StrongBuyFactor:        1.5,
		CoverageLowPct:         100,
		CoverageMediumPct:      70,
		DeficitTolerance:       0.30,
		InstallmentCautionPct:  30,
		InstallmentHighPct:     50,
		VolatileShare:          0.5,
		IlliquidShare:          0.4,
		CapitalSufficiency:     0.30,
		ReferenceMonthlyIncome: 50000,
		TrendWindow:            3,
		DefaultPlanYears:       10,
		DefaultPlanRate:        0.12,
	}
}
