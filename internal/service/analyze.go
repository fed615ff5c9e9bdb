// 求人分析のオーケストレーション
//
// 処理の流れ:
//  1. 入力検証（求人テキスト必須）
//  2. プロンプト組み立て → Gemini呼び出し（タイムアウトつき）
//  3. 応答テキストからJSON抽出 → Normalize
//     （抽出失敗は保守的なフォールバック判定に吸収する）
//  4. saveToHistoryの場合のみストアへ保存。保存失敗時はユーザーの
//     分析結果を失わないよう、未保存のRecordとして返す
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/baitoguard/backend/internal/analysis"
	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/template"
)

type AnalyzeService struct {
	llm            LLM
	store          Store
	promptOverride string
	timeout        time.Duration
}

func NewAnalyzeService(llm LLM, store Store, promptOverride string, timeout time.Duration) *AnalyzeService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnalyzeService{llm: llm, store: store, promptOverride: promptOverride, timeout: timeout}
}

// Analyze - 求人テキストを分析し、Recordを返す
func (s *AnalyzeService) Analyze(ctx context.Context, req model.AnalyzeRequest) (*model.Record, error) {
	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		return nil, fmt.Errorf("%w: 求人内容が必要です", ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, ErrMissingAPIKey
	}

	prompt := template.RenderAnalyze(s.promptOverride, jobDescription)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llm.GenerateText(callCtx, prompt, false)
	if err != nil {
		return nil, fmt.Errorf("%w: generate analysis: %v", ErrUpstream, err)
	}

	verdict := s.parseVerdict(text)

	if !req.SaveToHistory {
		rec := analysis.Assemble(jobDescription, verdict, false, "", "")
		return &rec, nil
	}

	id, createdAt, err := s.save(ctx, jobDescription, verdict)
	if err != nil {
		// 保存に失敗しても分析結果は返す。一時IDつきの未保存Recordになる
		log.Printf("Failed to save analysis, returning ephemeral record: %v", err)
		rec := analysis.Assemble(jobDescription, verdict, false, "", "")
		return &rec, nil
	}

	rec := analysis.Assemble(jobDescription, verdict, true, id, createdAt)
	return &rec, nil
}

// parseVerdict - LLM応答をVerdictへ変換する。JSONが復元できない
// 場合は生テキストをログに残し、フォールバック判定に差し替える
func (s *AnalyzeService) parseVerdict(text string) model.Verdict {
	obj, err := analysis.ExtractJSON(text)
	if err != nil {
		var parseErr *analysis.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("Failed to parse LLM response, using fallback verdict (raw=%q)", truncate(parseErr.Raw, 500))
		}
		return analysis.FallbackVerdict()
	}
	return analysis.Normalize(obj)
}

// save - 埋め込みを付与して保存する。埋め込み生成の失敗は保存を
// 妨げない（類似検索の対象から外れるだけ）
func (s *AnalyzeService) save(ctx context.Context, jobDescription string, verdict model.Verdict) (string, string, error) {
	var embedding []float32
	var embeddingModel string

	embedCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	vector, modelName, err := s.llm.EmbedText(embedCtx, jobDescription)
	if err != nil {
		log.Printf("Failed to embed job description, saving without embedding: %v", err)
	} else {
		embedding = vector
		embeddingModel = modelName
	}

	return s.store.InsertAnalysis(ctx, jobDescription, verdict, embedding, embeddingModel)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
