package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatsmart-api/internal/service"
)

// HistoryHandler expone el historial de comidas y sus estadisticas.
type HistoryHandler struct {
	logger  *zap.Logger
	history *service.HistoryService
}

func NewHistoryHandler(logger *zap.Logger, history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{logger: logger, history: history}
}

// ListMeals maneja GET /history/meals?search=&type=.
func (h *HistoryHandler) ListMeals(c *gin.Context) {
	meals, err := h.history.Meals(c.Request.Context(), c.Query("search"), c.Query("type"))
	if err != nil {
		h.logger.Error("list meals failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// WeeklyStats maneja GET /history/stats.
func (h *HistoryHandler) WeeklyStats(c *gin.Context) {
	stats, err := h.history.WeeklyStats(c.Request.Context())
	if err != nil {
		h.logger.Error("weekly stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
