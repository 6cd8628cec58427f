package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	chatH *ChatHandler,
	reportH *ReportHandler,
	scanH *ScanHandler,
	historyH *HistoryHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y JSON content-type.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	chatRoutes := r.Group("/chat")
	chatRoutes.POST("/session", chatH.CreateSession)
	chatRoutes.GET("/sessions", chatH.ListSessions)
	chatRoutes.POST("/session/:id/select", chatH.SelectSession)
	chatRoutes.GET("/session/:id", chatH.GetSession)
	chatRoutes.POST("/message", chatH.PostMessage)
	chatRoutes.POST("/file", chatH.PostFile)
	chatRoutes.GET("/splash", chatH.Splash)

	report := r.Group("/report")
	report.GET("", reportH.GetReport)
	report.POST("/message", reportH.PostMessage)
	report.POST("/document", reportH.PostDocument)

	r.POST("/ingredients/analyze", scanH.Analyze)
	r.GET("/scan/result", scanH.LastResult)
	r.POST("/measure/height", scanH.MeasureHeight)

	history := r.Group("/history")
	history.GET("/meals", historyH.ListMeals)
	history.GET("/stats", historyH.WeeklyStats)

	return r
}

// requestIDMiddleware etiqueta cada request con un id propagable en la
// cabecera X-Request-ID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
