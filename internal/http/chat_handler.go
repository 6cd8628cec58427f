package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatsmart-api/internal/chat"
	"eatsmart-api/internal/service"
)

// ChatHandler mantiene dependencias para los endpoints del chat del dashboard.
type ChatHandler struct {
	logger *zap.Logger
	chat   *service.ChatService
	splash *chat.Presenter
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chatSvc *service.ChatService, splash *chat.Presenter) *ChatHandler {
	return &ChatHandler{logger: logger, chat: chatSvc, splash: splash}
}

// CreateSession maneja POST /chat/session.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	sess, err := h.chat.NewSession()
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

// ListSessions maneja GET /chat/sessions.
func (h *ChatHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.chat.Summaries()})
}

// SelectSession maneja POST /chat/session/:id/select. Ids desconocidos son
// un no-op: la respuesta es 204 en ambos casos.
func (h *ChatHandler) SelectSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	h.chat.Select(id)
	c.Status(http.StatusNoContent)
}

// GetSession maneja GET /chat/session/:id.
func (h *ChatHandler) GetSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	sess, err := h.chat.Timeline(id)
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// PostMessage maneja POST /chat/message.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req struct {
		SessionID int    `json:"session_id"`
		Content   string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.chat.SendText(req.SessionID, req.Content)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		return
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	case err != nil:
		h.logger.Error("post message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not post message"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": msg})
}

// PostFile maneja POST /chat/file.
func (h *ChatHandler) PostFile(c *gin.Context) {
	var req struct {
		SessionID int    `json:"session_id"`
		FileName  string `json:"file_name"`
		SizeBytes int64  `json:"size_bytes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post file request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.chat.AttachFile(req.SessionID, req.FileName, req.SizeBytes)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file name"})
		return
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	case err != nil:
		h.logger.Error("post file failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not attach file"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": msg})
}

// Splash maneja GET /chat/splash.
func (h *ChatHandler) Splash(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"visible": h.chat.SplashVisible(),
		"word":    h.splash.Word(),
	})
}
