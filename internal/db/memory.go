// メモリ上のストア実装
//
// Postgres接続情報が無い環境（ローカル開発・デモ）で使う。起動時に
// 決定的なフィクスチャを3件持ち、保存した分析はプロセス内に保持する。
// どちらのストアを使うかは起動時に一度だけ選択される。
package db

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/baitoguard/backend/internal/model"
	"github.com/google/uuid"
)

type memoryEntry struct {
	record    model.Record
	embedding []float32
	createdAt time.Time
}

type Memory struct {
	mu      sync.RWMutex
	entries []memoryEntry
}

func NewMemory() *Memory {
	m := &Memory{}
	for _, rec := range fixtureRecords() {
		if !validRecord(rec) {
			log.Printf("Skipping invalid fixture record %s", rec.ID)
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339, rec.Timestamp)
		m.entries = append(m.entries, memoryEntry{record: rec, createdAt: createdAt})
	}
	return m
}

func (m *Memory) InsertAnalysis(ctx context.Context, jobDescription string, verdict model.Verdict, embedding []float32, embeddingModel string) (string, string, error) {
	now := time.Now().UTC()
	rec := model.Record{
		ID:             uuid.NewString(),
		Timestamp:      now.Format(time.RFC3339),
		JobDescription: jobDescription,
		AnalysisResult: verdict,
		SavedToHistory: true,
	}

	m.mu.Lock()
	m.entries = append(m.entries, memoryEntry{record: rec, embedding: embedding, createdAt: now})
	m.mu.Unlock()

	return rec.ID, rec.Timestamp, nil
}

func (m *Memory) ListAnalyses(ctx context.Context, opts model.ListOptions) ([]model.Record, error) {
	m.mu.RLock()
	entries := make([]memoryEntry, len(m.entries))
	copy(entries, m.entries)
	m.mu.RUnlock()

	filtered := make([]memoryEntry, 0, len(entries))
	for _, entry := range entries {
		switch opts.Filter {
		case "safe":
			if !entry.record.AnalysisResult.IsSafe {
				continue
			}
		case "unsafe":
			if entry.record.AnalysisResult.IsSafe {
				continue
			}
		}
		filtered = append(filtered, entry)
	}

	less := func(i, j int) bool {
		if opts.SortBy == "safety_score" {
			return filtered[i].record.AnalysisResult.SafetyScore < filtered[j].record.AnalysisResult.SafetyScore
		}
		return filtered[i].createdAt.Before(filtered[j].createdAt)
	}
	asc := opts.SortOrder == "asc"
	sort.SliceStable(filtered, func(i, j int) bool {
		if asc {
			return less(i, j)
		}
		return less(j, i)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	list := make([]model.Record, 0, len(filtered))
	for _, entry := range filtered {
		list = append(list, entry.record)
	}
	return list, nil
}

func (m *Memory) ListAll(ctx context.Context) ([]model.Record, error) {
	return m.ListAnalyses(ctx, model.ListOptions{Limit: 10000})
}

// SearchSimilar - 埋め込みを持つエントリをコサイン距離順に返す
func (m *Memory) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]model.SimilarAnalysis, error) {
	if limit <= 0 {
		limit = 5
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := []model.SimilarAnalysis{}
	for _, entry := range m.entries {
		if len(entry.embedding) == 0 {
			continue
		}
		results = append(results, model.SimilarAnalysis{
			Record:   entry.record,
			Distance: cosineDistance(embedding, entry.embedding),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
