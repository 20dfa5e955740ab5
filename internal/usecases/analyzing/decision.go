package analyzing

import (
	"fmt"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

const sellRiskAssessment = "Moderado - risco país considerado, mas a diversificação entre ativos voláteis e estáveis reduz a exposição"

// Decide compara manter o negócio e comprar o imóvel financiado contra vender o negócio
// e investir o capital. O financiamento é uma estimativa nocional, independente do
// plano de consórcio simulado pelo usuário.
func Decide(policy domain.Policy, in domain.DecisionInput) domain.DecisionAnalysis {
	years := policy.DefaultPlanYears
	if in.PlanDurationYears != nil && *in.PlanDurationYears > 0 {
		years = *in.PlanDurationYears
	}
	rate := policy.DefaultPlanRate
	if in.PlanAnnualRate != nil {
		rate = *in.PlanAnnualRate
	}

	financing := NotionalFinancing(in.TargetPrice, years, rate)

	businessValue := in.Analysis.ProjectedRevenue * policy.KeepMultiplier
	buy := domain.BuyScenario{
		PropertyValue:  in.TargetPrice,
		MonthlyPayment: financing.MonthlyPayment,
		TotalCost:      financing.TotalPayable,
		BusinessValue:  businessValue,
		NetPosition:    in.LiquidCapital + businessValue - financing.TotalPayable,
	}

	saleValue := in.Analysis.ProjectedRevenue * policy.SaleMultiplier
	totalCapital := in.LiquidCapital + saleValue
	sell := domain.SellScenario{
		CurrentInvestments:   in.LiquidCapital,
		BusinessSaleValue:    saleValue,
		TotalCapital:         totalCapital,
		PassiveIncomeMonthly: totalCapital * policy.SellPassiveRate / 12,
		PassiveIncomeYearly:  totalCapital * policy.SellPassiveRate,
		RiskAssessment:       sellRiskAssessment,
	}

	netBusinessIncome := in.Analysis.AverageMonthlyRevenue - financing.MonthlyPayment

	reasoning := []string{
		fmt.Sprintf("Receita média mensal do negócio: %.2f", in.Analysis.AverageMonthlyRevenue),
		fmt.Sprintf("Prestação mensal do financiamento: %.2f", financing.MonthlyPayment),
		fmt.Sprintf("Saldo líquido mensal (se comprar): %.2f", netBusinessIncome),
		fmt.Sprintf("Renda passiva mensal (se vender): %.2f", sell.PassiveIncomeMonthly),
	}

	var recommendation domain.Recommendation
	switch {
	case netBusinessIncome > sell.PassiveIncomeMonthly*policy.StrongBuyFactor:
		recommendation = domain.RecommendBuy
		reasoning = append(reasoning,
			"O negócio gera receita líquida significativamente maior que a renda passiva",
			"O fluxo de caixa positivo permite cobrir as prestações e ainda gerar lucro",
		)
	case netBusinessIncome > sell.PassiveIncomeMonthly:
		recommendation = domain.RecommendBuyWithReservations
		reasoning = append(reasoning,
			"O negócio gera receita líquida maior, mas a diferença não é tão significativa",
			"Considere o desgaste de continuar operando o negócio",
			"A renda passiva oferece mais tranquilidade e menos trabalho",
		)
	default:
		recommendation = domain.RecommendSellAndInvest
		reasoning = append(reasoning,
			"A renda passiva é maior ou similar ao saldo líquido do negócio",
			"Menos estresse e trabalho operacional",
			"A diversificação reduz a exposição ao risco país",
			"Liberdade para trabalhar na área sem ser empresário",
		)
	}

	reasoning = append(reasoning,
		"",
		"ANÁLISE DE RISCO PAÍS:",
		fmt.Sprintf("- Ativos voláteis (%s) são menos afetados pela economia local", percent(policy.RiskyAssetFraction)),
		fmt.Sprintf("- Ativos estáveis (%s) oferecem proteção contra a inflação", percent(policy.StableAssetFraction)),
		"- A moeda pode desvalorizar, mas investimentos diversificados mitigam o risco",
	)

	reasoning = append(reasoning,
		"",
		"CAPITAL NECESSÁRIO:",
		fmt.Sprintf("Para comprar o imóvel (%.2f):", in.TargetPrice),
		fmt.Sprintf("- Total via financiamento: %.2f", financing.TotalPayable),
		fmt.Sprintf("- Capital atual disponível: %.2f", in.LiquidCapital),
	)
	if in.LiquidCapital >= in.TargetPrice*policy.CapitalSufficiency {
		reasoning = append(reasoning, "✓ Você tem capital suficiente para a entrada")
	} else {
		reasoning = append(reasoning, "⚠ Pode ser necessário usar parte do capital para a entrada")
	}

	return domain.DecisionAnalysis{
		Financing:           financing,
		BuyScenario:         buy,
		SellScenario:        sell,
		Recommendation:      recommendation,
		RecommendationLabel: recommendation.Label(),
		Reasoning:           reasoning,
	}
}
