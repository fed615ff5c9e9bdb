package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/baitoguard/backend/internal/client"
	"github.com/baitoguard/backend/internal/model"
)

type ScrapeService struct {
	scraper *client.Scraper
}

func NewScrapeService(scraper *client.Scraper) *ScrapeService {
	return &ScrapeService{scraper: scraper}
}

// Scrape - 求人ページURLから求人内容テキストを取得する
func (s *ScrapeService) Scrape(ctx context.Context, req model.ScrapeRequest) (*model.ScrapeResponse, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, fmt.Errorf("%w: URLが必要です", ErrInvalidInput)
	}

	text, err := s.scraper.FetchJobDescription(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: 有効なURLを入力してください", ErrInvalidInput)
	}
	return &model.ScrapeResponse{JobDescription: text}, nil
}
