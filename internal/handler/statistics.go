package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	svc *service.StatisticsService
}

func NewStatisticsHandler(svc *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

// Statistics godoc
// @Summary Aggregate statistics over saved analyses
// @Tags statistics
// @Produce json
// @Success 200 {object} model.StatisticsEnvelope
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/statistics [get]
func (h *StatisticsHandler) Statistics(c *gin.Context) {
	stats, err := h.svc.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	noCache(c)
	c.JSON(http.StatusOK, model.StatisticsEnvelope{Status: "success", Data: stats})
}
