// Package template はGeminiへ送るプロンプトの組み立てを提供する。
//
// 分析プロンプトは設定ファイルで差し替え可能で、変数は以下の形式:
//
//	{{job.description}} — 分析対象の求人テキスト
//
// チャットプロンプトは判定結果の要約・会話履歴・質問から組み立てる。
package template

import (
	"fmt"
	"strings"

	"github.com/baitoguard/backend/internal/model"
)

// defaultAnalyzePrompt - 闇バイト判定のプロンプト。回答はJSON固定
const defaultAnalyzePrompt = `
あなたは闇バイト（違法・犯罪に関連するアルバイト）を検出する専門家です。
以下の求人情報が安全な正規のアルバイトか、危険な闇バイトかを詳細に分析してください。

求人情報:
"""
{{job.description}}
"""

分析の際は以下の点に特に注意してください：
1. 非現実的に高い報酬（時給3000円以上、日給3万円以上など）
2. 会社情報や雇用条件の不明確さ
3. 応募前の個人情報の要求
4. 曖昧な仕事内容や説明
5. 違法行為や犯罪に関連する可能性のある表現
6. 「即日払い」「身分証のみ」「LINE登録」などの怪しい表現
7. 「身バレ防止」「ノンアダルト」などの表現
8. 「簡単」「楽に稼げる」などの誇大表現

以下の形式でJSON形式で回答してください。全ての項目を省略せず含めてください:
{
  "isSafe": boolean, // 安全な求人かどうか
  "safetyScore": number, // 0-100の安全性スコア（高いほど安全）
  "warningFlags": [string], // 警告フラグのリスト
  "reasonsForConcern": [string], // 懸念事項のリスト
  "legalIssues": [string], // 法的問題点のリスト
  "redFlags": { // 危険シグナル
      "unrealisticPay": boolean, // 非現実的な高額報酬
      "lackOfCompanyInfo": boolean, // 会社情報の欠如
      "requestForPersonalInfo": boolean, // 個人情報の不審な要求
      "unclearJobDescription": boolean, // 曖昧な仕事内容
      "illegalActivity": boolean // 違法行為の示唆
  },
  "safetyAnalysis": string, // 詳細な安全性分析（300文字以上）
  "recommendedActions": [string], // 推奨される行動のリスト
  "alternativeJobSuggestions": [string], // 代替求人の提案
  "confidenceLevel": number // 0-100の分析確信度（高いほど確実）
}

回答は必ずJSON形式のみとし、前後に余計な文章を含めないでください。`

// OCRPrompt - 求人画像からのテキスト抽出プロンプト。回答はJSON固定
const OCRPrompt = `この画像は求人情報のスクリーンショットです。画像に含まれる求人テキストを全て抽出してください。

以下の形式でJSON形式のみで回答してください:
{
  "text": string, // 抽出した求人テキスト全文
  "confidence": number // 0-100の抽出確信度
}`

// RenderAnalyze - 分析プロンプトの変数を実際の値で置換する
//
// overrideが空文字列の場合は既定のプロンプトを使う。
func RenderAnalyze(override, jobDescription string) string {
	prompt := strings.TrimSpace(override)
	if prompt == "" {
		prompt = defaultAnalyzePrompt
	}
	return strings.NewReplacer(
		"{{job.description}}", jobDescription,
	).Replace(prompt)
}

// RenderChat - 判定要約・会話履歴・質問からチャットプロンプトを組み立てる
func RenderChat(record *model.Record, message string, history []model.ChatMessage) string {
	prompt := fmt.Sprintf(`
あなたは求人安全性分析AIアシスタントです。ユーザーの求人分析結果について質問に答えます。
以下の分析結果に基づいて、ユーザーの質問に日本語で回答してください。

## 分析結果の要約:
%s

## ユーザーの質問:
%s

回答は簡潔かつ具体的に、専門的な知識を活かして行ってください。
分析結果に含まれていない情報については、一般的な求人安全性の知識に基づいて回答してください。
ただし、分析結果にない具体的な情報については「分析結果にはその詳細情報がありません」と伝えてください。
`, SummarizeRecord(record), message)

	if formatted := formatHistory(history); formatted != "" {
		return formatted + "\n\n" + prompt
	}
	return prompt
}

// SummarizeRecord - チャット用に判定結果を日本語テキストへ要約する
func SummarizeRecord(record *model.Record) string {
	v := record.AnalysisResult
	return fmt.Sprintf(`
安全性: %s
安全性スコア: %d/100
確信度: %d%%

危険シグナル:
- 非現実的な高額報酬: %s
- 会社情報の欠如: %s
- 個人情報の不審な要求: %s
- 曖昧な仕事内容: %s
- 違法行為の示唆: %s

警告フラグ: %s

安全性分析: %s

懸念事項: %s

法的問題点: %s

推奨される行動: %s

代替求人の提案: %s

求人内容: %s
`,
		safeLabel(v.IsSafe),
		v.SafetyScore,
		v.ConfidenceLevel,
		flagLabel(v.RedFlags.UnrealisticPay),
		flagLabel(v.RedFlags.LackOfCompanyInfo),
		flagLabel(v.RedFlags.RequestForPersonalInfo),
		flagLabel(v.RedFlags.UnclearJobDescription),
		flagLabel(v.RedFlags.IllegalActivity),
		joinOrNone(v.WarningFlags),
		v.SafetyAnalysis,
		joinOrNone(v.ReasonsForConcern),
		joinOrNone(v.LegalIssues),
		joinOrNone(v.RecommendedActions),
		joinOrNone(v.AlternativeJobSuggestions),
		record.JobDescription,
	)
}

// formatHistory - 会話履歴を整形する。先頭のウェルカムメッセージは除外
func formatHistory(history []model.ChatMessage) string {
	if len(history) <= 1 {
		return ""
	}
	relevant := history[1:]

	lines := make([]string, 0, len(relevant))
	for _, msg := range relevant {
		role := "アシスタント"
		if msg.Role == "user" {
			role = "ユーザー"
		}
		lines = append(lines, role+": "+msg.Content)
	}
	return "## 過去の会話:\n" + strings.Join(lines, "\n\n")
}

func safeLabel(isSafe bool) string {
	if isSafe {
		return "安全"
	}
	return "危険"
}

func flagLabel(triggered bool) string {
	if triggered {
		return "あり"
	}
	return "なし"
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "なし"
	}
	return strings.Join(items, ", ")
}
