package service

import (
	"context"
	"errors"
	"testing"

	"github.com/baitoguard/backend/internal/client"
	"github.com/baitoguard/backend/internal/model"
)

func TestScrapeValidation(t *testing.T) {
	s := NewScrapeService(client.NewScraper(nil))

	for _, url := range []string{"", "   ", "not a url", "https://"} {
		_, err := s.Scrape(context.Background(), model.ScrapeRequest{URL: url})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Scrape(%q) error = %v, want ErrInvalidInput", url, err)
		}
	}
}

func TestScrapeReturnsJobDescription(t *testing.T) {
	s := NewScrapeService(client.NewScraper(nil))

	resp, err := s.Scrape(context.Background(), model.ScrapeRequest{URL: "https://www.indeed.com/viewjob?jk=123"})
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if resp.JobDescription == "" {
		t.Error("empty job description")
	}
}
