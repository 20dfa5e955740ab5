package analyzing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

func TestScenarios(t *testing.T) {
	policy := domain.DefaultPolicy()

	t.Run("Cenário misto 60/40", func(t *testing.T) {
		result := Scenarios(policy, 1000000, 0.6, 0.4)

		require.Len(t, result, 4)
		assert.Equal(t, "Conservador (4% ao ano)", result[0].Label)
		assert.Equal(t, "Moderado (6% ao ano)", result[1].Label)
		assert.Equal(t, "Arrojado (8% ao ano)", result[2].Label)
		assert.Equal(t, "Misto (12% volátil + 8% estável)", result[3].Label)

		blended := result[3]
		assert.InDelta(t, 0.104, blended.AnnualRate, 1e-12)
		assert.InDelta(t, 104000.0, blended.YearlyPassiveIncome, 1e-6)
		assert.InDelta(t, 104000.0/12, blended.MonthlyPassiveIncome, 1e-6)
		assert.InDelta(t, 1000000*math.Pow(1.104, 5), blended.ValueAfter5Years, 1e-6)
		assert.InDelta(t, 1000000*math.Pow(1.104, 10), blended.ValueAfter10Years, 1e-6)

		assert.InDelta(t, 40000.0, result[0].YearlyPassiveIncome, 1e-6)
		assert.InDelta(t, 5000.0, result[1].MonthlyPassiveIncome, 1e-6)
		assert.InDelta(t, 1000000*math.Pow(1.08, 10), result[2].ValueAfter10Years, 1e-6)
	})

	t.Run("Capital zero - quatro cenários zerados", func(t *testing.T) {
		result := Scenarios(policy, 0, 0.6, 0.4)

		require.Len(t, result, 4)
		for _, s := range result {
			assert.Equal(t, 0.0, s.InitialCapital)
			assert.Equal(t, 0.0, s.MonthlyPassiveIncome)
			assert.Equal(t, 0.0, s.YearlyPassiveIncome)
			assert.Equal(t, 0.0, s.ValueAfter5Years)
			assert.Equal(t, 0.0, s.ValueAfter10Years)
		}
	})

	t.Run("Frações que não somam 1 não são validadas", func(t *testing.T) {
		result := Scenarios(policy, 100, 1, 1)

		assert.InDelta(t, 0.20, result[3].AnnualRate, 1e-12)
	})
}
