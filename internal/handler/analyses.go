package handler

import (
	"net/http"
	"strconv"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List godoc
// @Summary List analysis history
// @Tags analyses
// @Produce json
// @Param sortBy query string false "created_at or safety_score" default(created_at)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param filter query string false "all, safe or unsafe" default(all)
// @Param limit query int false "Maximum number of records" default(100)
// @Success 200 {object} model.AnalysesEnvelope
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/analyses [get]
func (h *HistoryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	opts := model.ListOptions{
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Filter:    c.DefaultQuery("filter", "all"),
		Limit:     limit,
	}

	list, err := h.svc.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err)
		return
	}

	noCache(c)
	c.JSON(http.StatusOK, model.AnalysesEnvelope{Status: "success", Data: list})
}
