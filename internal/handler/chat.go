package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat godoc
// @Summary Follow-up chat about an analysis result
// @Tags chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "User message with the analysis being discussed"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "リクエストの形式が正しくありません"})
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
