package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatsmart-api/internal/chat"
	"eatsmart-api/internal/domain"
	"eatsmart-api/internal/service"
)

func setupChatRouter() (*gin.Engine, *chat.Store, *chat.Simulator) {
	gin.SetMode(gin.TestMode)

	store := chat.NewStore(service.DefaultGreeting)
	sim := chat.NewSimulator(store, zap.NewNop(), chat.SimulatorConfig{
		TextDelay: 5 * time.Millisecond,
		FileDelay: 5 * time.Millisecond,
	})
	chatSvc := service.NewChatService(store, sim)
	splash := chat.NewPresenter([]string{"Hola", "Namaste"}, time.Second)
	h := NewChatHandler(zap.NewNop(), chatSvc, splash)

	r := gin.New()
	r.POST("/chat/session", h.CreateSession)
	r.GET("/chat/sessions", h.ListSessions)
	r.POST("/chat/session/:id/select", h.SelectSession)
	r.GET("/chat/session/:id", h.GetSession)
	r.POST("/chat/message", h.PostMessage)
	r.POST("/chat/file", h.PostFile)
	r.GET("/chat/splash", h.Splash)
	return r, store, sim
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestChatHandlerPostMessage(t *testing.T) {
	r, store, sim := setupChatRouter()

	rec := performRequest(r, http.MethodPost, "/chat/message", map[string]any{"content": "Hello"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", rec.Code, rec.Body.String())
	}

	sess := store.Active()
	if len(sess.Messages) != 3 || !sess.HasTyping() {
		t.Fatalf("expected user message and placeholder, got %+v", sess.Messages)
	}
	sim.Wait()
}

func TestChatHandlerPostMessageBlank(t *testing.T) {
	r, store, _ := setupChatRouter()

	rec := performRequest(r, http.MethodPost, "/chat/message", map[string]any{"content": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if sess := store.Active(); len(sess.Messages) != 1 {
		t.Fatalf("expected no state change, got %d messages", len(sess.Messages))
	}
}

func TestChatHandlerPostMessageUnknownSession(t *testing.T) {
	r, _, _ := setupChatRouter()

	rec := performRequest(r, http.MethodPost, "/chat/message", map[string]any{"session_id": 42, "content": "hola"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestChatHandlerPostFile(t *testing.T) {
	r, store, sim := setupChatRouter()

	rec := performRequest(r, http.MethodPost, "/chat/file", map[string]any{
		"file_name":  "report.pdf",
		"size_bytes": 204800,
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", rec.Code)
	}

	var resp struct {
		Message domain.Message `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message.FileName != "report.pdf" || resp.Message.FileSizeKB != 200 {
		t.Fatalf("unexpected file message: %+v", resp.Message)
	}

	sim.Wait()
	sess := store.Active()
	if sess.Messages[len(sess.Messages)-1].Role != domain.RoleBot {
		t.Fatalf("expected bot reply after file flow")
	}
}

func TestChatHandlerSessions(t *testing.T) {
	r, store, _ := setupChatRouter()

	rec := performRequest(r, http.MethodPost, "/chat/session", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if store.ActiveID() != 2 {
		t.Fatalf("expected new session active, got %d", store.ActiveID())
	}

	rec = performRequest(r, http.MethodPost, "/chat/session/1/select", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if store.ActiveID() != 1 {
		t.Fatalf("expected session 1 active, got %d", store.ActiveID())
	}

	// Id desconocido: tolerancia silenciosa.
	rec = performRequest(r, http.MethodPost, "/chat/session/99/select", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for unknown id, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/chat/session/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown timeline, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/chat/sessions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestChatHandlerSplash(t *testing.T) {
	r, _, sim := setupChatRouter()

	rec := performRequest(r, http.MethodGet, "/chat/splash", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Visible bool   `json:"visible"`
		Word    string `json:"word"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Visible || resp.Word != "Hola" {
		t.Fatalf("expected visible splash with first word, got %+v", resp)
	}

	performRequest(r, http.MethodPost, "/chat/message", map[string]any{"content": "hola"})
	rec = performRequest(r, http.MethodGet, "/chat/splash", nil)
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Visible {
		t.Fatalf("expected splash hidden after user message")
	}
	sim.Wait()
}
