package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"femaqua-be/internal/service"
)

type QRCodeController struct {
	toolService service.ToolService
	size        int // PNG width and height in pixels
}

func NewQRCodeController(toolService service.ToolService, size int) *QRCodeController {
	if size <= 0 {
		size = 256
	}
	return &QRCodeController{
		toolService: toolService,
		size:        size,
	}
}

// GenerateQRCode handles GET /v1/tools/:id/qrcode - PNG QR code of the tool's link
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	toolID, ok := toolIDParam(c)
	if !ok {
		return
	}

	tool, err := qc.toolService.Get(c.Request.Context(), userID, toolID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Medium error recovery
	qrCode, err := qrcode.New(tool.Link, qrcode.Medium)
	if err != nil {
		respondError(c, fmt.Errorf("failed to generate QR code: %w", err))
		return
	}

	pngData, err := qrCode.PNG(qc.size)
	if err != nil {
		respondError(c, fmt.Errorf("failed to render QR code: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=tool-%d.png", tool.ID))
	c.Data(http.StatusOK, "image/png", pngData)
}
