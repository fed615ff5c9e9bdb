package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type TrendsHandler struct {
	svc *service.TrendsService
}

func NewTrendsHandler(svc *service.TrendsService) *TrendsHandler {
	return &TrendsHandler{svc: svc}
}

// Trends godoc
// @Summary Monthly trends over the last twelve months
// @Tags statistics
// @Produce json
// @Success 200 {object} model.TrendsResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/trends [get]
func (h *TrendsHandler) Trends(c *gin.Context) {
	trends, err := h.svc.Trends(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	noCache(c)
	c.JSON(http.StatusOK, trends)
}
