package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// writeError - サービス層のエラー分類をHTTPステータスへ変換する
//
// ErrUpstreamの詳細は利用者に返さずログにのみ出す。
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnsupportedMedia):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Gemini APIキーが設定されていません"})
	case errors.Is(err, service.ErrUpstream):
		log.Printf("Upstream error: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "処理中にエラーが発生しました。しばらくしてから再度お試しください"})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "処理中にエラーが発生しました"})
	}
}

// noCache - 統計/履歴系レスポンスのキャッシュを禁止する
func noCache(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
}
