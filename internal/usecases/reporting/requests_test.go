package reporting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

func TestValidate_PrimeiroCampoInvalido(t *testing.T) {
	plan := domain.InstallmentPlanParams{FaceValue: 1000000, DurationYears: 10}
	zero := 0
	negative := -0.1

	tests := []struct {
		name      string
		validate  func() error
		wantField string
	}{
		{
			name: "Plano com vários valores negativos",
			validate: func() error {
				bad := plan
				bad.TargetPrice = -1
				bad.UpfrontPayment = -1
				bad.AnnualAdminFeeRate = -1
				return PlanRequest{InstallmentPlanParams: bad}.Validate()
			},
			wantField: "target_price",
		},
		{
			name: "Plano com taxa e entrada inválidas",
			validate: func() error {
				bad := plan
				bad.UpfrontPayment = math.NaN()
				bad.AnnualAdminFeeRate = -1
				return PlanRequest{InstallmentPlanParams: bad}.Validate()
			},
			wantField: "upfront_payment",
		},
		{
			name: "Risco com vários valores negativos",
			validate: func() error {
				return RiskRequest{
					Plan:                   plan,
					LiquidCash:             -1,
					VolatileHoldings:       -1,
					ReferenceMonthlyIncome: -1,
				}.Validate()
			},
			wantField: "liquid_cash",
		},
		{
			name: "Risco com rendas negativas",
			validate: func() error {
				return RiskRequest{
					Plan:                   plan,
					RecurringExtraIncome:   -1,
					ReferenceMonthlyIncome: -1,
				}.Validate()
			},
			wantField: "recurring_extra_income",
		},
		{
			name: "Decisão com prazo zero informado",
			validate: func() error {
				return DecisionRequest{TargetPrice: 1, PlanDurationYears: &zero, PlanAnnualRate: &negative}.Validate()
			},
			wantField: "plan_duration_years",
		},
		{
			name: "Decisão com taxa negativa",
			validate: func() error {
				return DecisionRequest{TargetPrice: 1, PlanAnnualRate: &negative}.Validate()
			},
			wantField: "plan_annual_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a ordem de validação é fixa: repetir deve apontar sempre o mesmo campo
			for i := 0; i < 20; i++ {
				var verr *ValidationError
				require.ErrorAs(t, tt.validate(), &verr)
				assert.Equal(t, tt.wantField, verr.Field)
			}
		})
	}
}

func TestDecisionRequest_Validate_TaxaZero(t *testing.T) {
	years := 15
	req := DecisionRequest{TargetPrice: 1000000, PlanDurationYears: &years, PlanAnnualRate: ptr(0)}
	assert.NoError(t, req.Validate())
	assert.NoError(t, DecisionRequest{TargetPrice: 1000000}.Validate())
}
