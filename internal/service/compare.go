package service

import (
	"context"
	"fmt"

	"github.com/baitoguard/backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// compareConcurrency - 一括分析の同時Gemini呼び出し数上限
const compareConcurrency = 3

type CompareService struct {
	analyze *AnalyzeService
	limit   int
}

func NewCompareService(analyze *AnalyzeService, limit int) *CompareService {
	if limit <= 0 {
		limit = 5
	}
	return &CompareService{analyze: analyze, limit: limit}
}

// Compare - 複数の求人を並行分析して入力順のまま返す
//
// 各求人の分析は互いに独立。結果は保存しない（一時Recordのみ）。
// 1件でも分析に失敗した場合は全体をエラーにする。
func (s *CompareService) Compare(ctx context.Context, req model.CompareRequest) (*model.CompareResponse, error) {
	if len(req.JobDescriptions) < 2 {
		return nil, fmt.Errorf("%w: 比較には2件以上の求人が必要です", ErrInvalidInput)
	}
	if len(req.JobDescriptions) > s.limit {
		return nil, fmt.Errorf("%w: 一度に比較できるのは%d件までです", ErrInvalidInput, s.limit)
	}

	results := make([]model.Record, len(req.JobDescriptions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i, desc := range req.JobDescriptions {
		g.Go(func() error {
			rec, err := s.analyze.Analyze(gctx, model.AnalyzeRequest{JobDescription: desc})
			if err != nil {
				return err
			}
			results[i] = *rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.CompareResponse{Results: results}, nil
}
