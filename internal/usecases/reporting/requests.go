package reporting

import (
	"math"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

var DefaultTerms = []int{10, 15, 20}

type ScenarioRequest struct {
	Capital        float64  `json:"capital"`
	RiskyFraction  *float64 `json:"risky_fraction"`
	StableFraction *float64 `json:"stable_fraction"`
}

type PlanRequest struct {
	domain.InstallmentPlanParams
	CompareTerms []int `json:"compare_terms"`
}

type PlanSimulation struct {
	Plan       domain.InstallmentPlanResult   `json:"plan"`
	Comparison []domain.InstallmentPlanResult `json:"comparison,omitempty"`
}

type RiskRequest struct {
	Plan                   domain.InstallmentPlanParams `json:"plan"`
	OfferedPrice           float64                      `json:"offered_price"`
	LiquidCash             float64                      `json:"liquid_cash"`
	IlliquidHoldings       float64                      `json:"illiquid_holdings"`
	VolatileHoldings       float64                      `json:"volatile_holdings"`
	RecurringOffsetIncome  float64                      `json:"recurring_offset_income"`
	RecurringExtraIncome   float64                      `json:"recurring_extra_income"`
	ReferenceMonthlyIncome float64                      `json:"reference_monthly_income"`
}

type RiskResult struct {
	Plan       domain.InstallmentPlanResult `json:"plan"`
	Assessment domain.RiskAssessment        `json:"assessment"`
}

type DecisionRequest struct {
	TargetPrice       float64      `json:"target_price"`
	LiquidCapital     float64      `json:"liquid_capital"`
	PlanDurationYears *int         `json:"plan_duration_years"`
	PlanAnnualRate    *float64     `json:"plan_annual_rate"`
	Risk              *RiskRequest `json:"risk,omitempty"`
	Persist           bool         `json:"persist"`
}

type amountField struct {
	name  string
	value float64
}

// validateAmounts valida na ordem declarada e retorna o primeiro campo inválido
func validateAmounts(fields ...amountField) error {
	for _, f := range fields {
		if err := validateAmount(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

func validateFraction(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v < 0 || *v > 1 {
		return invalid(field, "must be between 0 and 1")
	}
	return nil
}

func validateDuration(field string, years int) error {
	if years <= 0 {
		return invalid(field, "must be a positive number of years")
	}
	return nil
}

func (r ScenarioRequest) Validate() error {
	if err := validateAmount("capital", r.Capital); err != nil {
		return err
	}
	if err := validateFraction("risky_fraction", r.RiskyFraction); err != nil {
		return err
	}
	return validateFraction("stable_fraction", r.StableFraction)
}

func validatePlan(p domain.InstallmentPlanParams) error {
	if err := validateDuration("duration_years", p.DurationYears); err != nil {
		return err
	}
	if p.FaceValue <= 0 || math.IsInf(p.FaceValue, 0) || math.IsNaN(p.FaceValue) {
		return invalid("face_value", "must be positive")
	}
	return validateAmounts(
		amountField{"target_price", p.TargetPrice},
		amountField{"upfront_payment", p.UpfrontPayment},
		amountField{"annual_admin_fee_rate", p.AnnualAdminFeeRate},
	)
}

func (r PlanRequest) Validate() error {
	if err := validatePlan(r.InstallmentPlanParams); err != nil {
		return err
	}
	for _, years := range r.CompareTerms {
		if err := validateDuration("compare_terms", years); err != nil {
			return err
		}
	}
	return nil
}

func (r RiskRequest) Validate() error {
	if err := validatePlan(r.Plan); err != nil {
		return err
	}
	return validateAmounts(
		amountField{"offered_price", r.OfferedPrice},
		amountField{"liquid_cash", r.LiquidCash},
		amountField{"illiquid_holdings", r.IlliquidHoldings},
		amountField{"volatile_holdings", r.VolatileHoldings},
		amountField{"recurring_offset_income", r.RecurringOffsetIncome},
		amountField{"recurring_extra_income", r.RecurringExtraIncome},
		amountField{"reference_monthly_income", r.ReferenceMonthlyIncome},
	)
}

func (r DecisionRequest) Validate() error {
	if r.TargetPrice <= 0 || math.IsInf(r.TargetPrice, 0) || math.IsNaN(r.TargetPrice) {
		return invalid("target_price", "must be positive")
	}
	if err := validateAmount("liquid_capital", r.LiquidCapital); err != nil {
		return err
	}
	if r.PlanDurationYears != nil {
		if err := validateDuration("plan_duration_years", *r.PlanDurationYears); err != nil {
			return err
		}
	}
	if r.PlanAnnualRate != nil {
		if err := validateAmount("plan_annual_rate", *r.PlanAnnualRate); err != nil {
			return err
		}
	}
	if r.Risk != nil {
		return r.Risk.Validate()
	}
	return nil
}
