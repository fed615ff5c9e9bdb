package model

// ChatMessage - チャット履歴の1メッセージ
type ChatMessage struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// ChatRequest - 分析結果に対する追加質問リクエスト
type ChatRequest struct {
	Message        string        `json:"message"`
	AnalysisResult *Record       `json:"analysisResult"`
	History        []ChatMessage `json:"history"`
}

// ChatResponse - チャット応答
type ChatResponse struct {
	Response string `json:"response"`
}
