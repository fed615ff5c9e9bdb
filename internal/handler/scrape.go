package handler

import (
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ScrapeHandler struct {
	svc *service.ScrapeService
}

func NewScrapeHandler(svc *service.ScrapeService) *ScrapeHandler {
	return &ScrapeHandler{svc: svc}
}

// Scrape godoc
// @Summary Fetch a job description from a posting URL
// @Tags scrape
// @Accept json
// @Produce json
// @Param request body model.ScrapeRequest true "Job posting URL"
// @Success 200 {object} model.ScrapeResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/scrape [post]
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	var req model.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "リクエストの形式が正しくありません"})
		return
	}

	resp, err := h.svc.Scrape(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
