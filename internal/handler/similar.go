package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type SimilarHandler struct {
	svc *service.SimilarService
}

func NewSimilarHandler(svc *service.SimilarService) *SimilarHandler {
	return &SimilarHandler{svc: svc}
}

type similarRequest struct {
	JobDescription string `json:"jobDescription"`
	Limit          int    `json:"limit"`
}

// Search godoc
// @Summary Find past analyses similar to a job description
// @Tags similar
// @Accept json
// @Produce json
// @Param request body handler.similarRequest true "Job description to match"
// @Success 200 {object} model.SimilarResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/similar [post]
func (h *SimilarHandler) Search(c *gin.Context) {
	var req similarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "リクエストの形式が正しくありません"})
		return
	}
	results, err := h.svc.Search(c.Request.Context(), req.JobDescription, req.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SimilarResponse{Status: "success", Results: results})
}
