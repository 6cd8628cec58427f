package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatsmart-api/internal/analysis"
	"eatsmart-api/internal/repository"
	"eatsmart-api/internal/service"
)

// ScanHandler mantiene dependencias para los endpoints de scan y medicion.
type ScanHandler struct {
	logger  *zap.Logger
	scans   *service.ScanService
	heights *service.HeightService
	limiter service.AnalyzeRateLimiter
}

func NewScanHandler(
	logger *zap.Logger,
	scans *service.ScanService,
	heights *service.HeightService,
	limiter service.AnalyzeRateLimiter,
) *ScanHandler {
	return &ScanHandler{logger: logger, scans: scans, heights: heights, limiter: limiter}
}

// Analyze maneja POST /ingredients/analyze.
func (h *ScanHandler) Analyze(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many analysis requests"})
		return
	}

	var req struct {
		Image string `json:"image" binding:"required"`
		Mode  string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.scans.Analyze(c.Request.Context(), req.Image, req.Mode)
	var upstream *analysis.UpstreamError
	switch {
	case errors.Is(err, service.ErrScanInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.As(err, &upstream):
		// El detalle del analizador viaja tal cual a la notificacion del usuario.
		c.JSON(http.StatusBadGateway, gin.H{"error": upstream.Detail})
		return
	case err != nil:
		h.logger.Error("analyze failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"additive_info": result.AdditiveInfo,
		"result_id":     result.ID,
	})
}

// LastResult maneja GET /scan/result. Sin resultado almacenado responde 404
// con la ruta de captura para que el cliente redirija.
func (h *ScanHandler) LastResult(c *gin.Context) {
	result, err := h.scans.LastResult(c.Request.Context())
	if errors.Is(err, repository.ErrNoResult) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no scan result", "redirect": "/dashboard/scan"})
		return
	}
	if err != nil {
		h.logger.Error("load scan result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load scan result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// MeasureHeight maneja POST /measure/height.
func (h *ScanHandler) MeasureHeight(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid measure request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	heightCm, err := h.heights.Estimate(c.Request.Context(), req.Image)
	if errors.Is(err, service.ErrScanInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("height estimate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not estimate height"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"height_cm": heightCm})
}
