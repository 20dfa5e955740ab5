package domain

import (
	"fmt"
	"strings"
)

// RiskTier é uma classificação ordinal: LOW < MEDIUM < HIGH
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
)

var riskTierNames = map[RiskTier]string{
	RiskLow:    "LOW",
	RiskMedium: "MEDIUM",
	RiskHigh:   "HIGH",
}

var riskTierLabels = map[RiskTier]string{
	RiskLow:    "BAIXO",
	RiskMedium: "MÉDIO",
	RiskHigh:   "ALTO",
}

// Raise sobe um nível, limitado a HIGH
func (t RiskTier) Raise() RiskTier {
	if t >= RiskHigh {
		return RiskHigh
	}
	return t + 1
}

// Lower desce um nível, limitado a LOW
func (t RiskTier) Lower() RiskTier {
	if t <= RiskLow {
		return RiskLow
	}
	return t - 1
}

func (t RiskTier) IsValid() bool {
	_, ok := riskTierNames[t]
	return ok
}

func (t RiskTier) String() string {
	if name, ok := riskTierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RiskTier(%d)", int(t))
}

// Label retorna o nome exibido ao usuário
func (t RiskTier) Label() string {
	return riskTierLabels[t]
}

func (t RiskTier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid risk tier: %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *RiskTier) UnmarshalText(text []byte) error {
	for tier, name := range riskTierNames {
		if strings.EqualFold(name, string(text)) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("invalid risk tier: %q", string(text))
}

// FindingLevel classifica um apontamento da análise de risco
type FindingLevel string

const (
	FindingPositive FindingLevel = "positive"
	FindingCaution  FindingLevel = "caution"
	FindingNegative FindingLevel = "negative"
)

type Finding struct {
	Level   FindingLevel `json:"level"`
	Message string       `json:"message"`
}

// RiskInput reúne os dados da análise de risco do consórcio
type RiskInput struct {
	TargetPrice            float64               `json:"target_price"`
	OfferedPrice           float64               `json:"offered_price"`
	LiquidCash             float64               `json:"liquid_cash"`
	IlliquidHoldings       float64               `json:"illiquid_holdings"`
	VolatileHoldings       float64               `json:"volatile_holdings"`
	Plan                   InstallmentPlanResult `json:"plan"`
	UpfrontPayment         float64               `json:"upfront_payment"`
	RecurringOffsetIncome  float64               `json:"recurring_offset_income"`
	RecurringExtraIncome   float64               `json:"recurring_extra_income"`
	ReferenceMonthlyIncome float64               `json:"reference_monthly_income"` // zero usa o valor da política
}

type RiskAssessment struct {
	Tier                     RiskTier  `json:"tier"`
	TierLabel                string    `json:"tier_label"`
	Summary                  string    `json:"summary"`
	Findings                 []Finding `json:"findings"`
	CapitalRequired          float64   `json:"capital_required"`
	CapitalAvailable         float64   `json:"capital_available"`
	CapitalCoverageRatio     Ratio     `json:"capital_coverage_ratio"`
	InstallmentToIncomeRatio Ratio     `json:"installment_to_income_ratio"`
	NetMonthlyBalance        *float64  `json:"net_monthly_balance,omitempty"`
}
