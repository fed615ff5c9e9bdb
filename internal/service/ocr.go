package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baitoguard/backend/internal/analysis"
	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/template"
)

// maxImageBytes - 受け付ける画像サイズの上限（10MB）
const maxImageBytes = 10 * 1024 * 1024

// allowedImageTypes - 受け付ける画像形式
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type OCRService struct {
	llm     LLM
	timeout time.Duration
}

func NewOCRService(llm LLM, timeout time.Duration) *OCRService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OCRService{llm: llm, timeout: timeout}
}

// ExtractText - 求人画像からテキストと確信度を抽出する
//
// Geminiのvision応答はJSON（{"text":..., "confidence":...}）を
// 期待するが、JSONが復元できない場合は応答全体をテキストとして
// 確信度50で返す（抽出結果を捨てない）。
func (s *OCRService) ExtractText(ctx context.Context, image []byte, mimeType string) (*model.OCRResponse, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: 画像ファイルが必要です", ErrInvalidInput)
	}
	if len(image) > maxImageBytes {
		return nil, fmt.Errorf("%w: ファイルサイズは10MB以下にしてください", ErrUnsupportedMedia)
	}
	if !allowedImageTypes[mimeType] {
		return nil, fmt.Errorf("%w: JPG、PNG、WEBP、GIF形式の画像のみアップロードできます", ErrUnsupportedMedia)
	}
	if s.llm == nil {
		return nil, ErrMissingAPIKey
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llm.ExtractImageText(callCtx, template.OCRPrompt, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: extract image text: %v", ErrUpstream, err)
	}

	obj, err := analysis.ExtractJSON(text)
	if err != nil {
		return &model.OCRResponse{Text: strings.TrimSpace(text), Confidence: 50}, nil
	}

	resp := &model.OCRResponse{Confidence: 50}
	if extracted, ok := obj["text"].(string); ok {
		resp.Text = strings.TrimSpace(extracted)
	}
	if confidence, ok := obj["confidence"].(float64); ok {
		resp.Confidence = clampConfidence(confidence)
	}
	return resp, nil
}

func clampConfidence(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
