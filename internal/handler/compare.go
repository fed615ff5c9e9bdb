package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type CompareHandler struct {
	svc *service.CompareService
}

func NewCompareHandler(svc *service.CompareService) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// Compare godoc
// @Summary Analyze several job postings side by side
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body model.CompareRequest true "Job postings to compare (2 or more)"
// @Success 200 {object} model.CompareResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/compare [post]
func (h *CompareHandler) Compare(c *gin.Context) {
	var req model.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "リクエストの形式が正しくありません"})
		return
	}

	resp, err := h.svc.Compare(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
