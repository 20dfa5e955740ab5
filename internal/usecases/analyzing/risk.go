package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

var tierSummaries = map[domain.RiskTier]string{
	domain.RiskLow:    "Capital e fluxo de caixa suficientes para a transação",
	domain.RiskMedium: "Transação viável, mas com margem apertada",
	domain.RiskHigh:   "Capital ou fluxo de caixa insuficiente para a transação completa",
}

// AssessRisk classifica o risco da compra via consórcio.
//
// O nível começa em MEDIUM e é ajustado na ordem: cobertura de capital (define o nível),
// fluxo de caixa recorrente (sobe ou desce um nível), comprometimento da receita e
// composição da liquidez (apenas informativos). Sem capital necessário a cobertura é +Inf.
func AssessRisk(policy domain.Policy, in domain.RiskInput) domain.RiskAssessment {
	tier := domain.RiskMedium
	var findings []domain.Finding
	add := func(level domain.FindingLevel, format string, args ...any) {
		findings = append(findings, domain.Finding{Level: level, Message: fmt.Sprintf(format, args...)})
	}

	// ativos ilíquidos ficam fora do capital disponível
	available := in.LiquidCash + in.VolatileHoldings
	required := in.UpfrontPayment + (in.TargetPrice - in.OfferedPrice)
	coverage := math.Inf(1)
	if required > 0 {
		coverage = available / required * 100
	}

	switch {
	case coverage >= policy.CoverageLowPct:
		tier = domain.RiskLow
		add(domain.FindingPositive, "Capital disponível cobre o lance inicial e a diferença do imóvel")
	case coverage >= policy.CoverageMediumPct:
		tier = domain.RiskMedium
		add(domain.FindingCaution, "Capital disponível cobre a maior parte do necessário")
		add(domain.FindingCaution, "Considere manter reserva de emergência")
	default:
		tier = domain.RiskHigh
		add(domain.FindingNegative, "Capital disponível não cobre o necessário")
		add(domain.FindingCaution, "Pode ser necessário usar parte dos ativos ilíquidos")
	}

	reference := in.ReferenceMonthlyIncome
	if reference <= 0 {
		reference = policy.ReferenceMonthlyIncome
	}

	net := (in.RecurringOffsetIncome + in.RecurringExtraIncome) - in.Plan.MonthlyPayment
	if net > 0 {
		add(domain.FindingPositive, "Receitas recorrentes (%.2f + %.2f) cobrem a parcela de %.2f com saldo de %.2f",
			in.RecurringOffsetIncome, in.RecurringExtraIncome, in.Plan.MonthlyPayment, net)
		tier = tier.Lower()
	} else {
		add(domain.FindingNegative, "Receitas recorrentes (%.2f + %.2f) não cobrem a parcela de %.2f, déficit de %.2f",
			in.RecurringOffsetIncome, in.RecurringExtraIncome, in.Plan.MonthlyPayment, math.Abs(net))
		if math.Abs(net) > reference*policy.DeficitTolerance {
			tier = tier.Raise()
		}
	}

	installmentRatio := in.Plan.MonthlyPayment / reference * 100
	switch {
	case installmentRatio > policy.InstallmentHighPct:
		add(domain.FindingCaution, "Parcela mensal representa mais de %.0f%% da receita de referência", policy.InstallmentHighPct)
	case installmentRatio > policy.InstallmentCautionPct:
		add(domain.FindingCaution, "Parcela mensal representa entre %.0f%% e %.0f%% da receita de referência",
			policy.InstallmentCautionPct, policy.InstallmentHighPct)
	default:
		add(domain.FindingPositive, "Parcela mensal em nível confortável")
	}

	if in.VolatileHoldings > available*policy.VolatileShare {
		add(domain.FindingCaution, "Maior parte do capital disponível está em ativos voláteis")
	}
	totalHoldings := in.LiquidCash + in.IlliquidHoldings + in.VolatileHoldings
	if in.IlliquidHoldings > totalHoldings*policy.IlliquidShare {
		add(domain.FindingPositive, "Boa diversificação com ativos ilíquidos")
	}

	return domain.RiskAssessment{
		Tier:                     tier,
		TierLabel:                tier.Label(),
		Summary:                  tierSummaries[tier],
		Findings:                 findings,
		CapitalRequired:          required,
		CapitalAvailable:         available,
		CapitalCoverageRatio:     domain.Ratio(coverage),
		InstallmentToIncomeRatio: domain.Ratio(installmentRatio),
		NetMonthlyBalance:        &net,
	}
}
