package service

import (
	"context"
	"fmt"

	"github.com/baitoguard/backend/internal/model"
)

const defaultHistoryLimit = 100

type HistoryService struct {
	store Store
}

func NewHistoryService(store Store) *HistoryService {
	return &HistoryService{store: store}
}

// List - クエリパラメータ由来の条件を正規化して履歴を取得する
//
// 不正な値はエラーにせず既定値に落とす（履歴表示を止めない）。
func (s *HistoryService) List(ctx context.Context, opts model.ListOptions) ([]model.Record, error) {
	if opts.SortBy != "safety_score" {
		opts.SortBy = "created_at"
	}
	if opts.SortOrder != "asc" {
		opts.SortOrder = "desc"
	}
	switch opts.Filter {
	case "safe", "unsafe":
	default:
		opts.Filter = "all"
	}
	if opts.Limit <= 0 || opts.Limit > 1000 {
		opts.Limit = defaultHistoryLimit
	}

	list, err := s.store.ListAnalyses(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list analyses: %v", ErrUpstream, err)
	}
	return list, nil
}
