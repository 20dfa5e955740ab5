package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

// Scenarios projeta a renda passiva do capital em quatro cenários, sempre na ordem
// conservador, moderado, arrojado e misto. As frações não precisam somar 1.
func Scenarios(policy domain.Policy, capital, riskyFraction, stableFraction float64) []domain.InvestmentScenario {
	blended := riskyFraction*policy.RiskyAssetRate + stableFraction*policy.StableAssetRate

	return []domain.InvestmentScenario{
		scenario(fmt.Sprintf("Conservador (%s ao ano)", percent(policy.ConservativeRate)), capital, policy.ConservativeRate),
		scenario(fmt.Sprintf("Moderado (%s ao ano)", percent(policy.ModerateRate)), capital, policy.ModerateRate),
		scenario(fmt.Sprintf("Arrojado (%s ao ano)", percent(policy.AggressiveRate)), capital, policy.AggressiveRate),
		scenario(fmt.Sprintf("Misto (%s volátil + %s estável)", percent(policy.RiskyAssetRate), percent(policy.StableAssetRate)), capital, blended),
	}
}

func scenario(label string, capital, rate float64) domain.InvestmentScenario {
	return domain.InvestmentScenario{
		Label:                label,
		AnnualRate:           rate,
		InitialCapital:       capital,
		MonthlyPassiveIncome: capital * rate / 12,
		YearlyPassiveIncome:  capital * rate,
		ValueAfter5Years:     capital * math.Pow(1+rate, 5),
		ValueAfter10Years:    capital * math.Pow(1+rate, 10),
	}
}

func percent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}
