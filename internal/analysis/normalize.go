package analysis

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/baitoguard/backend/internal/model"
)

// redFlagKeys - redFlagsが持つべき5つの固定キー
var redFlagKeys = []string{
	"unrealisticPay",
	"lackOfCompanyInfo",
	"requestForPersonalInfo",
	"unclearJobDescription",
	"illegalActivity",
}

// Normalize - 任意の構造化値を正規のVerdictへ補完・正規化する
//
// 全域関数であり失敗しない。空のmapや型違いのフィールドを渡しても
// 常に有効なVerdictを返す。各フィールドは独立に処理される:
//   - isSafe: boolでなければfalse
//   - safetyScore: 数値でなければ0、その後[0,100]にクランプ
//   - confidenceLevel: 数値でなければ50、その後[0,100]にクランプ
//   - 5つの配列フィールド: 配列でなければ空列（要素の再検査はしない）
//   - redFlags: 欠落/非オブジェクトなら全キーfalse。存在する場合は
//     5キーを個別に確認し、boolでないキーだけfalseに置換
//   - safetyAnalysis: falsyなら空文字列
//
// 生成モデルの不安定な出力形を受け止めるための関数で、判定不能な
// 場合は安全側（低スコア寄り）の既定値に倒す。冪等。
func Normalize(candidate map[string]any) model.Verdict {
	if candidate == nil {
		candidate = map[string]any{}
	}

	v := model.Verdict{}

	if b, ok := candidate["isSafe"].(bool); ok {
		v.IsSafe = b
	}

	if n, ok := toNumber(candidate["safetyScore"]); ok {
		v.SafetyScore = clamp(n)
	}

	if n, ok := toNumber(candidate["confidenceLevel"]); ok {
		v.ConfidenceLevel = clamp(n)
	} else {
		v.ConfidenceLevel = 50
	}

	v.WarningFlags = toStringSlice(candidate["warningFlags"])
	v.ReasonsForConcern = toStringSlice(candidate["reasonsForConcern"])
	v.LegalIssues = toStringSlice(candidate["legalIssues"])
	v.RecommendedActions = toStringSlice(candidate["recommendedActions"])
	v.AlternativeJobSuggestions = toStringSlice(candidate["alternativeJobSuggestions"])

	if flags, ok := candidate["redFlags"].(map[string]any); ok {
		v.RedFlags = model.RedFlags{
			UnrealisticPay:         boolKey(flags, "unrealisticPay"),
			LackOfCompanyInfo:      boolKey(flags, "lackOfCompanyInfo"),
			RequestForPersonalInfo: boolKey(flags, "requestForPersonalInfo"),
			UnclearJobDescription:  boolKey(flags, "unclearJobDescription"),
			IllegalActivity:        boolKey(flags, "illegalActivity"),
		}
	}

	if s, ok := candidate["safetyAnalysis"].(string); ok {
		v.SafetyAnalysis = s
	}

	return v
}

// FallbackVerdict - JSON解析に失敗したときの保守的な既定判定
//
// 「何も表示しない」のではなく「要注意」として提示するための値。
func FallbackVerdict() model.Verdict {
	return model.Verdict{
		IsSafe:      false,
		SafetyScore: 30,
		WarningFlags: []string{
			"AIによる分析に失敗しました。手動での確認をお勧めします。",
		},
		ReasonsForConcern: []string{
			"AIによる分析結果を正確に解析できませんでした。",
		},
		LegalIssues: []string{},
		RedFlags: model.RedFlags{
			LackOfCompanyInfo:     true,
			UnclearJobDescription: true,
		},
		SafetyAnalysis: "AIによる分析に技術的な問題が発生しました。この求人は自動的に「要注意」としてマークされています。手動での確認をお勧めします。",
		RecommendedActions: []string{
			"この求人に応募する前に、会社の詳細情報を確認してください。",
			"応募前に企業の公式サイトや評判を調査してください。",
		},
		AlternativeJobSuggestions: []string{
			"公式の求人サイトや人材紹介会社を通じた求人を探してみてください。",
		},
		ConfidenceLevel: 30,
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}

func boolKey(flags map[string]any, key string) bool {
	b, ok := flags[key].(bool)
	return ok && b
}

func clamp(n float64) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return int(math.Round(n))
}
