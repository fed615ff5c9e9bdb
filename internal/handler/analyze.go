package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AnalyzeHandler struct {
	svc *service.AnalyzeService
}

func NewAnalyzeHandler(svc *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Analyze godoc
// @Summary Analyze a job posting
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body model.AnalyzeRequest true "Job posting to analyze"
// @Success 200 {object} model.Record
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "リクエストの形式が正しくありません"})
		return
	}

	rec, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}
