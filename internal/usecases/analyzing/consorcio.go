package analyzing

import (
	"math"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

// ComputePlan calcula o plano de consórcio em forma fechada.
//
// A taxa de administração incide sobre o valor da carta, não sobre o saldo.
// EffectiveAnnualRate é uma aproximação linear do custo anual
// ((total pago - carta) / carta / anos), não uma TIR. Prazo ou carta zerados
// produzem NaN/Inf nos campos derivados.
func ComputePlan(params domain.InstallmentPlanParams) domain.InstallmentPlanResult {
	installments := params.DurationYears * 12
	financed := params.FaceValue - params.UpfrontPayment

	totalAdminFee := params.FaceValue * params.AnnualAdminFeeRate * float64(params.DurationYears) / 100
	baseMonthly := financed / float64(installments)
	monthlyAdminFee := params.FaceValue * params.AnnualAdminFeeRate / (100 * 12)
	monthly := baseMonthly + monthlyAdminFee

	totalPaid := params.UpfrontPayment + monthly*float64(installments)
	effective := (totalPaid - params.FaceValue) / params.FaceValue * 100 / float64(params.DurationYears)

	return domain.InstallmentPlanResult{
		DurationYears:        params.DurationYears,
		FinancedBalance:      financed,
		TotalAdminFee:        totalAdminFee,
		TotalPayable:         params.UpfrontPayment + financed + totalAdminFee,
		BaseMonthlyPayment:   baseMonthly,
		MonthlyAdminFee:      monthlyAdminFee,
		MonthlyPayment:       monthly,
		NumberOfInstallments: installments,
		EffectiveAnnualRate:  domain.Ratio(effective),
	}
}

// CompareTerms recalcula o plano para cada prazo, mantendo a ordem recebida
func CompareTerms(params domain.InstallmentPlanParams, terms []int) []domain.InstallmentPlanResult {
	results := make([]domain.InstallmentPlanResult, 0, len(terms))
	for _, years := range terms {
		p := params
		p.DurationYears = years
		results = append(results, ComputePlan(p))
	}
	return results
}

// NotionalFinancing estima o financiamento do valor cheio pela tabela Price.
// Com taxa zero a prestação é linear.
func NotionalFinancing(price float64, years int, annualRate float64) domain.FinancingEstimate {
	n := years * 12
	i := annualRate / 12

	var monthly float64
	if i == 0 {
		monthly = price / float64(n)
	} else {
		factor := math.Pow(1+i, float64(n))
		monthly = price * (i * factor) / (factor - 1)
	}
	total := monthly * float64(n)

	return domain.FinancingEstimate{
		PropertyValue:        price,
		DurationYears:        years,
		AnnualRate:           annualRate,
		NumberOfInstallments: n,
		MonthlyPayment:       monthly,
		TotalPayable:         total,
		OpportunityCost:      total - price,
	}
}
