package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

type memoryReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.DecisionReport
}

func NewMemoryReportRepository() ReportRepository {
	return &memoryReportRepository{
		reports: make(map[string]domain.DecisionReport),
	}
}

func (r *memoryReportRepository) Save(_ context.Context, report *domain.DecisionReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[report.ID] = *report
	return nil
}

func (r *memoryReportRepository) GetByID(_ context.Context, id string) (*domain.DecisionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	return &report, nil
}

func (r *memoryReportRepository) ListRecent(_ context.Context, limit int) ([]domain.ReportSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]domain.ReportSummary, 0, len(r.reports))
	for _, report := range r.reports {
		summaries = append(summaries, domain.ReportSummary{
			ID:             report.ID,
			CreatedAt:      report.CreatedAt,
			Recommendation: report.Decision.Recommendation,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID > summaries[j].ID
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}
