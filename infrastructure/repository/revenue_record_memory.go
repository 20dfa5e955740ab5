package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/decision-report-api/internal/domain"
)

// memoryRevenueRecordRepository mantém os registros em memória quando o banco está desabilitado
type memoryRevenueRecordRepository struct {
	mu       sync.RWMutex
	bySource map[string][]domain.RevenueRecord
}

func NewMemoryRevenueRecordRepository() RevenueRecordRepository {
	return &memoryRevenueRecordRepository{
		bySource: make(map[string][]domain.RevenueRecord),
	}
}

func (r *memoryRevenueRecordRepository) ReplaceSource(_ context.Context, source, _ string, records []domain.RevenueRecord) error {
	copied := make([]domain.RevenueRecord, len(records))
	copy(copied, records)
	for i := range copied {
		copied[i].Source = source
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(copied) == 0 {
		delete(r.bySource, source)
		return nil
	}
	r.bySource[source] = copied
	return nil
}

func (r *memoryRevenueRecordRepository) ListAll(_ context.Context) ([]domain.RevenueRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]string, 0, len(r.bySource))
	for source := range r.bySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	records := make([]domain.RevenueRecord, 0)
	for _, source := range sources {
		records = append(records, r.bySource[source]...)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	return records, nil
}

func (r *memoryRevenueRecordRepository) CountBySource(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.bySource))
	for source, records := range r.bySource {
		counts[source] = len(records)
	}
	return counts, nil
}
