package service

import "errors"

// エラー分類。ハンドラ層でHTTPステータスへの変換に使う
var (
	// ErrMissingAPIKey - Gemini APIキー未設定（500相当、リトライしない）
	ErrMissingAPIKey = errors.New("gemini api key is not configured")

	// ErrInvalidInput - 入力不備（400相当、リトライしない）
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedMedia - 受け付けない画像形式/サイズ（400相当）
	ErrUnsupportedMedia = errors.New("unsupported media")

	// ErrUpstream - LLM/OCR/ストレージ側の障害（500相当、詳細は
	// ログにのみ出し、利用者には一般的なメッセージを返す）
	ErrUpstream = errors.New("upstream service failed")
)
