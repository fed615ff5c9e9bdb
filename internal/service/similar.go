package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baitoguard/backend/internal/model"
)

// defaultSimilarLimit - 類似検索の既定件数
const defaultSimilarLimit = 5

type SimilarService struct {
	llm     LLM
	store   Store
	timeout time.Duration
}

func NewSimilarService(llm LLM, store Store, timeout time.Duration) *SimilarService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &SimilarService{llm: llm, store: store, timeout: timeout}
}

// Search - 求人内容を埋め込みに変換し、過去の分析から近いものを探す
func (s *SimilarService) Search(ctx context.Context, jobDescription string, limit int) ([]model.SimilarAnalysis, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return nil, fmt.Errorf("%w: 求人内容が必要です", ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, ErrMissingAPIKey
	}
	if limit <= 0 || limit > 50 {
		limit = defaultSimilarLimit
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	embedding, _, err := s.llm.EmbedText(callCtx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("%w: embed text: %v", ErrUpstream, err)
	}

	results, err := s.store.SearchSimilar(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: search similar: %v", ErrUpstream, err)
	}
	return results, nil
}
