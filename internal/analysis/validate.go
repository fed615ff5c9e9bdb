package analysis

// sequenceFields - Verdictが持つべき5つの配列フィールド
var sequenceFields = []string{
	"warningFlags",
	"reasonsForConcern",
	"legalIssues",
	"recommendedActions",
	"alternativeJobSuggestions",
}

// IsValidRecord - 往復後のRecord相当データが正規の形を満たすか判定する
//
// ストレージ等から読み戻したデータをUIに渡す前の最終確認に使う。
// 純粋な述語で、Normalizeと違い修復は一切行わない。判定内容:
//  1. jobDescription / analysisResult / timestamp が全て存在して空でない
//  2. analysisResultの各フィールドが正しい型を持つ
//  3. 5つの配列フィールドが全て配列である
//  4. redFlagsに5つの固定キーが全てboolとして存在する
//
// いずれかに違反した時点でfalseを返す。
func IsValidRecord(candidate map[string]any) bool {
	if candidate == nil {
		return false
	}

	desc, ok := candidate["jobDescription"].(string)
	if !ok || desc == "" {
		return false
	}
	ts, ok := candidate["timestamp"].(string)
	if !ok || ts == "" {
		return false
	}

	verdict, ok := candidate["analysisResult"].(map[string]any)
	if !ok || verdict == nil {
		return false
	}

	if _, ok := verdict["isSafe"].(bool); !ok {
		return false
	}
	if _, ok := toNumber(verdict["safetyScore"]); !ok {
		return false
	}
	if _, ok := toNumber(verdict["confidenceLevel"]); !ok {
		return false
	}
	if _, ok := verdict["safetyAnalysis"].(string); !ok {
		return false
	}

	for _, field := range sequenceFields {
		if _, ok := verdict[field].([]any); !ok {
			return false
		}
	}

	flags, ok := verdict["redFlags"].(map[string]any)
	if !ok || flags == nil {
		return false
	}
	for _, key := range redFlagKeys {
		if _, ok := flags[key].(bool); !ok {
			return false
		}
	}

	return true
}
