// Gemini APIクライアント
//
// 3種類の呼び出しを提供する:
//   - GenerateText: 分析/チャットプロンプトの送信
//   - ExtractImageText: 求人画像からのテキスト抽出（vision）
//   - EmbedText: 類似求人検索用の埋め込み生成
//
// 応答のJSON整形はここでは行わない（internal/analysisの責務）。
package client

import (
	"context"
	"fmt"

	"github.com/baitoguard/backend/internal/config"
	"google.golang.org/genai"
)

type GeminiClient struct {
	client         *genai.Client
	model          string
	chatModel      string
	embeddingModel string
}

func NewGeminiClient(cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client:         client,
		model:          cfg.Model,
		chatModel:      cfg.ChatModel,
		embeddingModel: cfg.EmbeddingModel,
	}, nil
}

// GenerateText - プロンプトを送信して生成テキストを受け取る
//
// chatがtrueの場合はチャット用モデルを使う。
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, chat bool) (string, error) {
	model := c.model
	if chat {
		model = c.chatModel
	}
	res, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("empty generation result")
	}
	return text, nil
}

// ExtractImageText - 求人画像とプロンプトを送信してテキストを受け取る
func (c *GeminiClient) ExtractImageText(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("empty vision result")
	}
	return text, nil
}

// EmbedText - テキストの埋め込みベクトルとモデル名を返す
func (c *GeminiClient) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	res, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, c.embeddingModel, err
	}
	if res == nil || len(res.Embeddings) == 0 || res.Embeddings[0] == nil {
		return nil, c.embeddingModel, fmt.Errorf("empty embedding result")
	}
	return res.Embeddings[0].Values, c.embeddingModel, nil
}
