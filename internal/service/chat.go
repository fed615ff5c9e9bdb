package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/template"
)

type ChatService struct {
	llm     LLM
	timeout time.Duration
}

func NewChatService(llm LLM, timeout time.Duration) *ChatService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChatService{llm: llm, timeout: timeout}
}

// Chat - 分析結果についての追加質問に回答する
//
// 判定結果の日本語要約と会話履歴をプロンプトに含めてGeminiへ送る。
func (s *ChatService) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" || req.AnalysisResult == nil {
		return nil, fmt.Errorf("%w: メッセージと分析結果が必要です", ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, ErrMissingAPIKey
	}

	prompt := template.RenderChat(req.AnalysisResult, message, req.History)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llm.GenerateText(callCtx, prompt, true)
	if err != nil {
		return nil, fmt.Errorf("%w: generate chat reply: %v", ErrUpstream, err)
	}

	return &model.ChatResponse{Response: text}, nil
}
