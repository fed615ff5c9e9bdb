package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/gin-gonic/gin"
)

// Ping - ヘルスチェックエンドポイント
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Root - ルートエンドポイント
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "闇バイトチェッカー API server is running",
	})
}
