package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/baitoguard/backend/internal/analysis"
	"github.com/baitoguard/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// Postgres - analysis_resultsテーブルに対するストア実装
type Postgres struct {
	Pool *pgxpool.Pool
}

// EnsureSchema - analysis_resultsテーブルとインデックスを作成する
//
// embeddingカラムはpgvector。拡張が無い環境でも分析保存は動くように
// vector拡張の作成失敗は埋め込み無しモードとして握りつぶさない
// （起動時にエラーとして返し、呼び出し側で判断する）。
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`
		CREATE TABLE IF NOT EXISTS analysis_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			job_description TEXT NOT NULL,
			is_safe BOOLEAN NOT NULL DEFAULT FALSE,
			safety_score INTEGER NOT NULL DEFAULT 0,
			confidence_level INTEGER NOT NULL DEFAULT 50,
			warning_flags JSONB NOT NULL DEFAULT '[]',
			reasons_for_concern JSONB NOT NULL DEFAULT '[]',
			legal_issues JSONB NOT NULL DEFAULT '[]',
			red_flags JSONB NOT NULL DEFAULT '{}',
			safety_analysis TEXT NOT NULL DEFAULT '',
			recommended_actions JSONB NOT NULL DEFAULT '[]',
			alternative_job_suggestions JSONB NOT NULL DEFAULT '[]',
			embedding vector(768),
			embedding_model TEXT NOT NULL DEFAULT ''
		)
		`,
		`CREATE INDEX IF NOT EXISTS analysis_results_created_at_idx ON analysis_results(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS analysis_results_is_safe_idx ON analysis_results(is_safe)`,
		`CREATE INDEX IF NOT EXISTS analysis_results_safety_score_idx ON analysis_results(safety_score)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis - 判定結果を保存し、払い出したIDと作成時刻を返す
func (db *Postgres) InsertAnalysis(ctx context.Context, jobDescription string, verdict model.Verdict, embedding []float32, embeddingModel string) (string, string, error) {
	warningFlags, _ := json.Marshal(verdict.WarningFlags)
	reasons, _ := json.Marshal(verdict.ReasonsForConcern)
	legalIssues, _ := json.Marshal(verdict.LegalIssues)
	redFlags, _ := json.Marshal(verdict.RedFlags)
	actions, _ := json.Marshal(verdict.RecommendedActions)
	alternatives, _ := json.Marshal(verdict.AlternativeJobSuggestions)

	var embeddingArg any
	if len(embedding) > 0 {
		embeddingArg = pgvector.NewVector(embedding)
	}

	query := `
		INSERT INTO analysis_results (
			job_description, is_safe, safety_score, confidence_level,
			warning_flags, reasons_for_concern, legal_issues, red_flags,
			safety_analysis, recommended_actions, alternative_job_suggestions,
			embedding, embedding_model
		)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7::jsonb, $8::jsonb, $9, $10::jsonb, $11::jsonb, $12, $13)
		RETURNING id, created_at
	`

	var id string
	var createdAt time.Time
	err := db.Pool.QueryRow(ctx, query,
		jobDescription,
		verdict.IsSafe,
		verdict.SafetyScore,
		verdict.ConfidenceLevel,
		warningFlags,
		reasons,
		legalIssues,
		redFlags,
		verdict.SafetyAnalysis,
		actions,
		alternatives,
		embeddingArg,
		embeddingModel,
	).Scan(&id, &createdAt)
	if err != nil {
		return "", "", err
	}

	return id, createdAt.UTC().Format(time.RFC3339), nil
}

// ListAnalyses - ソート/フィルタ/件数制限つきで履歴を取得する
//
// 読み戻した行は新規のLLM出力と同じNormalizeを通してRecordに変換する。
// 正規化の入口を1つに保つための設計で、ここを迂回してはいけない。
func (db *Postgres) ListAnalyses(ctx context.Context, opts model.ListOptions) ([]model.Record, error) {
	sortColumn := "created_at"
	if opts.SortBy == "safety_score" {
		sortColumn = "safety_score"
	}
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	where := ""
	switch opts.Filter {
	case "safe":
		where = "WHERE is_safe = TRUE"
	case "unsafe":
		where = "WHERE is_safe = FALSE"
	}

	query := fmt.Sprintf(`
		SELECT
			id, created_at, job_description, is_safe, safety_score, confidence_level,
			warning_flags, reasons_for_concern, legal_issues, red_flags,
			safety_analysis, recommended_actions, alternative_job_suggestions
		FROM analysis_results
		%s
		ORDER BY %s %s
		LIMIT %d`, where, sortColumn, direction, limit)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		// 正規化でも直らない行（本文やタイムスタンプの欠落）は返さない
		if !validRecord(rec) {
			log.Printf("Skipping invalid analysis row %s", rec.ID)
			continue
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Record{}
	}
	return list, nil
}

// ListAll - 統計集計用に全件を取得する
func (db *Postgres) ListAll(ctx context.Context) ([]model.Record, error) {
	return db.ListAnalyses(ctx, model.ListOptions{Limit: 10000})
}

// SearchSimilar - 埋め込みベクトルのコサイン距離で近い過去の分析を探す
func (db *Postgres) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]model.SimilarAnalysis, error) {
	if limit <= 0 {
		limit = 5
	}

	query := fmt.Sprintf(`
		SELECT
			id, created_at, job_description, is_safe, safety_score, confidence_level,
			warning_flags, reasons_for_concern, legal_issues, red_flags,
			safety_analysis, recommended_actions, alternative_job_suggestions,
			embedding <=> $1 AS distance
		FROM analysis_results
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT %d`, limit)

	rows, err := db.Pool.Query(ctx, query, pgvector.NewVector(embedding))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.SimilarAnalysis
	for rows.Next() {
		var distance float64
		rec, err := scanRecordWith(rows.Scan, &distance)
		if err != nil {
			return nil, err
		}
		if !validRecord(rec) {
			log.Printf("Skipping invalid analysis row %s", rec.ID)
			continue
		}
		list = append(list, model.SimilarAnalysis{Record: rec, Distance: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.SimilarAnalysis{}
	}
	return list, nil
}

type scanFunc func(dest ...any) error

func scanRecord(scan scanFunc) (model.Record, error) {
	return scanRecordWith(scan)
}

// scanRecordWith - 行をsnake_caseカラムから読み、camelCaseのmapに
// 詰め直してNormalizeを通す。extraは末尾カラム（distance等）の受け皿
func scanRecordWith(scan scanFunc, extra ...any) (model.Record, error) {
	var (
		id             string
		createdAt      time.Time
		jobDescription string
		isSafe         bool
		safetyScore    int
		confidence     int
		warningFlags   []byte
		reasons        []byte
		legalIssues    []byte
		redFlags       []byte
		safetyAnalysis string
		actions        []byte
		alternatives   []byte
	)

	dest := []any{
		&id, &createdAt, &jobDescription, &isSafe, &safetyScore, &confidence,
		&warningFlags, &reasons, &legalIssues, &redFlags,
		&safetyAnalysis, &actions, &alternatives,
	}
	dest = append(dest, extra...)

	if err := scan(dest...); err != nil {
		return model.Record{}, err
	}

	candidate := map[string]any{
		"isSafe":                    isSafe,
		"safetyScore":               float64(safetyScore),
		"confidenceLevel":           float64(confidence),
		"warningFlags":              decodeJSONValue(warningFlags),
		"reasonsForConcern":         decodeJSONValue(reasons),
		"legalIssues":               decodeJSONValue(legalIssues),
		"redFlags":                  decodeJSONValue(redFlags),
		"safetyAnalysis":            safetyAnalysis,
		"recommendedActions":        decodeJSONValue(actions),
		"alternativeJobSuggestions": decodeJSONValue(alternatives),
	}

	return model.Record{
		ID:             id,
		Timestamp:      createdAt.UTC().Format(time.RFC3339),
		JobDescription: jobDescription,
		AnalysisResult: analysis.Normalize(candidate),
		SavedToHistory: true,
	}, nil
}

// validRecord - 読み戻したRecordをJSON往復させ、正規の形を満たすか
// 確認する。redFlags等の欠落はNormalizeが補完済みなので、ここで
// 落ちるのは本文やタイムスタンプが空の行だけ
func validRecord(rec model.Record) bool {
	raw, err := json.Marshal(rec)
	if err != nil {
		return false
	}
	decoded, err := analysis.DecodeRecord(raw)
	if err != nil {
		return false
	}
	return analysis.IsValidRecord(decoded)
}

// decodeJSONValue - JSONBカラムを任意の値として読む。壊れていても
// nilを返すだけで、欠落分はNormalizeが既定値で埋める
func decodeJSONValue(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
