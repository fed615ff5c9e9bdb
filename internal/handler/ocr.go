package handler

import (
	"io"
	"net/http"

	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type OCRHandler struct {
	svc *service.OCRService
}

func NewOCRHandler(svc *service.OCRService) *OCRHandler {
	return &OCRHandler{svc: svc}
}

// ExtractText godoc
// @Summary Extract job description text from an image
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Job posting image (JPG/PNG/WEBP/GIF, up to 10MB)"
// @Success 200 {object} model.OCRResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/ocr [post]
func (h *OCRHandler) ExtractText(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "画像ファイルを読み込めませんでした"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "画像ファイルを読み込めませんでした"})
		return
	}

	resp, err := h.svc.ExtractText(c.Request.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
