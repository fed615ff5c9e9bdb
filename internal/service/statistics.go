package service

import (
	"context"
	"fmt"

	"github.com/baitoguard/backend/internal/analysis"
	"github.com/baitoguard/backend/internal/model"
)

type StatisticsService struct {
	store Store
}

func NewStatisticsService(store Store) *StatisticsService {
	return &StatisticsService{store: store}
}

// Statistics - 全Recordから統計を毎回計算して返す（キャッシュしない）
func (s *StatisticsService) Statistics(ctx context.Context) (*model.Statistics, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list analyses: %v", ErrUpstream, err)
	}
	stats := analysis.Aggregate(records)
	return &stats, nil
}
