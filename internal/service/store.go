package service

import (
	"context"

	"github.com/baitoguard/backend/internal/model"
)

// Store - 分析結果の永続化契約
//
// 実装は2つ: internal/db.Postgres（実ストア）と internal/db.Memory
// （決定的フィクスチャ）。どちらを使うかは起動時に一度だけ決まる。
type Store interface {
	InsertAnalysis(ctx context.Context, jobDescription string, verdict model.Verdict, embedding []float32, embeddingModel string) (id, createdAt string, err error)
	ListAnalyses(ctx context.Context, opts model.ListOptions) ([]model.Record, error)
	ListAll(ctx context.Context) ([]model.Record, error)
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]model.SimilarAnalysis, error)
}

// LLM - Gemini呼び出しの契約。テストではフェイクを注入する
//
// APIキー未設定の場合、各サービスにはnilが渡される。
type LLM interface {
	GenerateText(ctx context.Context, prompt string, chat bool) (string, error)
	ExtractImageText(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, string, error)
}
