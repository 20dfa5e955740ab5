package analyzing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

func levels(findings []domain.Finding) []domain.FindingLevel {
	result := make([]domain.FindingLevel, 0, len(findings))
	for _, f := range findings {
		result = append(result, f.Level)
	}
	return result
}

func TestAssessRisk(t *testing.T) {
	policy := domain.DefaultPolicy()
	plan := ComputePlan(domain.InstallmentPlanParams{
		TargetPrice:        3200000,
		FaceValue:          2000000,
		UpfrontPayment:     500000,
		DurationYears:      15,
		AnnualAdminFeeRate: 1.2,
	})

	tests := []struct {
		name     string
		input    domain.RiskInput
		validate func(t *testing.T, result domain.RiskAssessment)
	}{
		{
			name: "Cobertura parcial com saldo mensal positivo - desce para LOW",
			input: domain.RiskInput{
				TargetPrice:           3200000,
				OfferedPrice:          2500000,
				LiquidCash:            300000,
				IlliquidHoldings:      500000,
				VolatileHoldings:      700000,
				Plan:                  plan,
				UpfrontPayment:        500000,
				RecurringOffsetIncome: 7000,
				RecurringExtraIncome:  4500,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskLow, result.Tier)
				assert.Equal(t, "BAIXO", result.TierLabel)
				assert.Equal(t, 1200000.0, result.CapitalRequired)
				assert.Equal(t, 1000000.0, result.CapitalAvailable)
				assert.InDelta(t, 83.33, float64(result.CapitalCoverageRatio), 0.01)
				assert.InDelta(t, 20.67, float64(result.InstallmentToIncomeRatio), 0.01)
				require.NotNil(t, result.NetMonthlyBalance)
				assert.InDelta(t, 1166.67, *result.NetMonthlyBalance, 0.01)
				assert.Equal(t, []domain.FindingLevel{
					domain.FindingCaution,
					domain.FindingCaution,
					domain.FindingPositive,
					domain.FindingPositive,
					domain.FindingCaution,
				}, levels(result.Findings))
				assert.Contains(t, result.Findings[2].Message, "7000.00 + 4500.00")
				assert.Contains(t, result.Findings[2].Message, "10333.33")
			},
		},
		{
			name: "Capital necessário zero - cobertura indefinida e nível LOW",
			input: domain.RiskInput{
				TargetPrice:  1000000,
				OfferedPrice: 1000000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskLow, result.Tier)
				assert.Equal(t, 0.0, result.CapitalRequired)
				assert.True(t, math.IsInf(float64(result.CapitalCoverageRatio), 1))
				assert.False(t, result.CapitalCoverageRatio.IsDefined())
			},
		},
		{
			name: "Capital insuficiente e déficit alto - permanece HIGH",
			input: domain.RiskInput{
				TargetPrice:    3200000,
				OfferedPrice:   2500000,
				LiquidCash:     100000,
				Plan:           domain.InstallmentPlanResult{MonthlyPayment: 20000},
				UpfrontPayment: 500000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskHigh, result.Tier)
				assert.Equal(t, []domain.FindingLevel{
					domain.FindingNegative,
					domain.FindingCaution,
					domain.FindingNegative,
					domain.FindingCaution,
				}, levels(result.Findings))
				assert.Equal(t, "Parcela mensal representa entre 30% e 50% da receita de referência", result.Findings[3].Message)
			},
		},
		{
			name: "Capital suficiente e déficit alto - sobe para MEDIUM",
			input: domain.RiskInput{
				TargetPrice:    3200000,
				OfferedPrice:   2500000,
				LiquidCash:     2000000,
				Plan:           domain.InstallmentPlanResult{MonthlyPayment: 20000},
				UpfrontPayment: 500000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskMedium, result.Tier)
			},
		},
		{
			name: "Cobertura parcial e déficit alto - sobe para HIGH",
			input: domain.RiskInput{
				TargetPrice:    3200000,
				OfferedPrice:   2500000,
				LiquidCash:     1000000,
				Plan:           domain.InstallmentPlanResult{MonthlyPayment: 20000},
				UpfrontPayment: 500000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskHigh, result.Tier)
			},
		},
		{
			name: "Déficit dentro da tolerância - mantém nível da cobertura",
			input: domain.RiskInput{
				TargetPrice:    3200000,
				OfferedPrice:   2500000,
				LiquidCash:     1000000,
				Plan:           plan,
				UpfrontPayment: 500000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskMedium, result.Tier)
			},
		},
		{
			name: "Parcela acima de 50% da receita não altera o nível",
			input: domain.RiskInput{
				TargetPrice:           3200000,
				OfferedPrice:          2500000,
				LiquidCash:            2000000,
				Plan:                  domain.InstallmentPlanResult{MonthlyPayment: 30000},
				UpfrontPayment:        500000,
				RecurringOffsetIncome: 40000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskLow, result.Tier)
				assert.InDelta(t, 60.0, float64(result.InstallmentToIncomeRatio), 1e-9)
				assert.Equal(t, "Parcela mensal representa mais de 50% da receita de referência", result.Findings[2].Message)
			},
		},
		{
			name: "Receita de referência informada substitui a da política",
			input: domain.RiskInput{
				TargetPrice:            3200000,
				OfferedPrice:           2500000,
				LiquidCash:             2000000,
				Plan:                   domain.InstallmentPlanResult{MonthlyPayment: 4000},
				UpfrontPayment:         500000,
				ReferenceMonthlyIncome: 10000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				assert.Equal(t, domain.RiskMedium, result.Tier)
				assert.InDelta(t, 40.0, float64(result.InstallmentToIncomeRatio), 1e-9)
			},
		},
		{
			name: "Boa diversificação com ativos ilíquidos",
			input: domain.RiskInput{
				TargetPrice:      1000000,
				OfferedPrice:     1000000,
				LiquidCash:       100000,
				IlliquidHoldings: 900000,
			},
			validate: func(t *testing.T, result domain.RiskAssessment) {
				last := result.Findings[len(result.Findings)-1]
				assert.Equal(t, domain.FindingPositive, last.Level)
				assert.Equal(t, "Boa diversificação com ativos ilíquidos", last.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AssessRisk(policy, tt.input))
		})
	}
}

func TestAssessRisk_TierAlwaysValid(t *testing.T) {
	policy := domain.DefaultPolicy()
	values := []float64{-1000000, 0, 1, 50000, 1000000}
	payments := []float64{0, 10000, math.NaN(), math.Inf(1)}

	for _, cash := range values {
		for _, upfront := range values {
			for _, diff := range values {
				for _, payment := range payments {
					result := AssessRisk(policy, domain.RiskInput{
						TargetPrice:           diff,
						LiquidCash:            cash,
						VolatileHoldings:      cash / 2,
						UpfrontPayment:        upfront,
						Plan:                  domain.InstallmentPlanResult{MonthlyPayment: payment},
						RecurringOffsetIncome: cash / 10,
					})
					assert.True(t, result.Tier.IsValid())
					assert.NotEmpty(t, result.Summary)
				}
			}
		}
	}
}
