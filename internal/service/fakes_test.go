package service

import (
	"context"
	"errors"

	"github.com/baitoguard/backend/internal/model"
)

// fakeLLM - LLMのテストダブル。未設定の関数フィールドはエラーを返す
type fakeLLM struct {
	generateFunc func(ctx context.Context, prompt string, chat bool) (string, error)
	extractFunc  func(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
	embedFunc    func(ctx context.Context, text string) ([]float32, string, error)
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, chat bool) (string, error) {
	if f.generateFunc == nil {
		return "", errors.New("generateFunc not set")
	}
	return f.generateFunc(ctx, prompt, chat)
}

func (f *fakeLLM) ExtractImageText(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if f.extractFunc == nil {
		return "", errors.New("extractFunc not set")
	}
	return f.extractFunc(ctx, prompt, image, mimeType)
}

func (f *fakeLLM) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	if f.embedFunc == nil {
		return nil, "", errors.New("embedFunc not set")
	}
	return f.embedFunc(ctx, text)
}

// fakeStore - Storeのテストダブル
type fakeStore struct {
	insertFunc  func(ctx context.Context, jobDescription string, verdict model.Verdict, embedding []float32, embeddingModel string) (string, string, error)
	listFunc    func(ctx context.Context, opts model.ListOptions) ([]model.Record, error)
	listAllFunc func(ctx context.Context) ([]model.Record, error)
	similarFunc func(ctx context.Context, embedding []float32, limit int) ([]model.SimilarAnalysis, error)
}

func (f *fakeStore) InsertAnalysis(ctx context.Context, jobDescription string, verdict model.Verdict, embedding []float32, embeddingModel string) (string, string, error) {
	if f.insertFunc == nil {
		return "", "", errors.New("insertFunc not set")
	}
	return f.insertFunc(ctx, jobDescription, verdict, embedding, embeddingModel)
}

func (f *fakeStore) ListAnalyses(ctx context.Context, opts model.ListOptions) ([]model.Record, error) {
	if f.listFunc == nil {
		return nil, errors.New("listFunc not set")
	}
	return f.listFunc(ctx, opts)
}

func (f *fakeStore) ListAll(ctx context.Context) ([]model.Record, error) {
	if f.listAllFunc == nil {
		return nil, errors.New("listAllFunc not set")
	}
	return f.listAllFunc(ctx)
}

func (f *fakeStore) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]model.SimilarAnalysis, error) {
	if f.similarFunc == nil {
		return nil, errors.New("similarFunc not set")
	}
	return f.similarFunc(ctx, embedding, limit)
}
