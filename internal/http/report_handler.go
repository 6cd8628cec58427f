package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatsmart-api/internal/service"
)

// ReportHandler expone el chat del reporte de salud.
type ReportHandler struct {
	logger *zap.Logger
	report *service.ReportService
}

func NewReportHandler(logger *zap.Logger, report *service.ReportService) *ReportHandler {
	return &ReportHandler{logger: logger, report: report}
}

// GetReport maneja GET /report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	sess, err := h.report.Timeline()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": sess,
		"splash":  h.report.SplashVisible(),
	})
}

// PostMessage maneja POST /report/message.
func (h *ReportHandler) PostMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.report.SendText(req.Content)
	if errors.Is(err, service.ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		return
	}
	if err != nil {
		h.logger.Error("report message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not post message"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": msg})
}

// PostDocument maneja POST /report/document: dispara el flujo de score card.
func (h *ReportHandler) PostDocument(c *gin.Context) {
	var req struct {
		FileName  string `json:"file_name"`
		SizeBytes int64  `json:"size_bytes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report document request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.report.AttachDocument(req.FileName, req.SizeBytes)
	if errors.Is(err, service.ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file name"})
		return
	}
	if err != nil {
		h.logger.Error("report document failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not attach document"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": msg})
}
