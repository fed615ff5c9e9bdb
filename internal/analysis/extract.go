// Package analysis は外部LLMの信頼できない応答を正規のVerdict/Recordへ
// 変換する中核ロジックを提供する。
//
// 入口は3つ:
//   - ExtractJSON: 生成テキストからJSONオブジェクトを取り出す
//   - Normalize:   任意の構造をVerdictに補完・正規化する
//   - IsValidRecord: 往復後のデータが正規の形を満たすか判定する
//
// 型付きの値を信頼できるのはNormalizeを通過した後のみ。
package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// ParseError - LLM応答からJSONを復元できなかったことを示す
//
// Rawに生の応答テキストを保持する（ログ診断用）。
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "no JSON object found in model output"
}

// ```json フェンスの中身を取り出す。(?s)で改行もマッチさせる
var jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ExtractJSON - 生成テキストに埋め込まれたJSONオブジェクトを取り出す
//
// 優先順:
//  1. ```json フェンス内をパース
//  2. 最初に現れる対応の取れた {...} 区間をパース
//
// どちらも失敗した場合は *ParseError を返す。モデルは散文やコード
// フェンスでJSONを包むことがあるため寛容に探すが、JSONらしき区間が
// 全く無い場合は推測せずエラーにする。
func ExtractJSON(text string) (map[string]any, error) {
	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		var obj map[string]any
		if err := json.Unmarshal([]byte(m[1]), &obj); err == nil {
			return obj, nil
		}
	}

	if span, ok := firstObjectSpan(text); ok {
		var obj map[string]any
		if err := json.Unmarshal([]byte(span), &obj); err == nil {
			return obj, nil
		}
	}

	return nil, &ParseError{Raw: text}
}

// firstObjectSpan - 最初の '{' から括弧の対応が取れるまでを切り出す。
// 文字列リテラル内の括弧とエスケープは数えない
func firstObjectSpan(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return "", false
}

// DecodeRecord - JSONバイト列をRecord相当のmapとして読み込む。
// ストレージ往復後のデータをIsValidRecordに掛ける前段で使う
func DecodeRecord(data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return obj, nil
}
