package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

func TestMemoryReportRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReportRepository()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, rec := range []domain.Recommendation{domain.RecommendBuy, domain.RecommendSellAndInvest, domain.RecommendBuyWithReservations} {
		require.NoError(t, repo.Save(ctx, &domain.DecisionReport{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Decision:  domain.DecisionAnalysis{Recommendation: rec},
		}))
	}

	t.Run("Busca por id", func(t *testing.T) {
		report, err := repo.GetByID(ctx, "b")

		require.NoError(t, err)
		assert.Equal(t, domain.RecommendSellAndInvest, report.Decision.Recommendation)
	})

	t.Run("Id inexistente", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "z")

		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("Lista os mais recentes primeiro", func(t *testing.T) {
		summaries, err := repo.ListRecent(ctx, 2)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "c", summaries[0].ID)
		assert.Equal(t, domain.RecommendBuyWithReservations, summaries[0].Recommendation)
		assert.Equal(t, "b", summaries[1].ID)
	})
}
