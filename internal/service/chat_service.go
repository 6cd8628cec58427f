package service

import (
	"errors"
	"strings"

	"eatsmart-api/internal/chat"
	"eatsmart-api/internal/domain"
)

// DefaultGreeting es el mensaje sembrado en cada sesion nueva del chat.
const DefaultGreeting = "Hello! How can I help you today?"

var (
	ErrChatServiceNotConfigured = errors.New("chat service not configured")
	ErrEmptyMessage             = errors.New("empty message")
	ErrSessionNotFound          = errors.New("session not found")
)

// ChatService orquesta el store de sesiones y el simulador de respuestas.
type ChatService struct {
	store *chat.Store
	sim   *chat.Simulator
}

func NewChatService(store *chat.Store, sim *chat.Simulator) *ChatService {
	return &ChatService{store: store, sim: sim}
}

// SendText agrega el mensaje del usuario a la sesion indicada (la activa si
// sessionID es cero) y agenda la respuesta simulada. Entradas vacias o de
// solo espacios no producen ningun cambio de estado.
func (s *ChatService) SendText(sessionID int, text string) (domain.Message, error) {
	if s == nil || s.store == nil {
		return domain.Message{}, ErrChatServiceNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	if sessionID == 0 {
		sessionID = s.store.ActiveID()
	}

	msg, ok := s.store.Append(sessionID, domain.Message{Role: domain.RoleUser, Text: text})
	if !ok {
		return domain.Message{}, ErrSessionNotFound
	}
	s.store.RenameIfDefault(sessionID, text)
	s.sim.Reply(sessionID, text)
	return msg, nil
}

// AttachFile registra el adjunto de inmediato (solo nombre y tamaño, el
// contenido nunca se parsea ni se transmite) y dispara la simulacion como si
// el archivo fuera un prompt.
func (s *ChatService) AttachFile(sessionID int, fileName string, sizeBytes int64) (domain.Message, error) {
	if s == nil || s.store == nil {
		return domain.Message{}, ErrChatServiceNotConfigured
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	if sessionID == 0 {
		sessionID = s.store.ActiveID()
	}

	sizeKB := int(sizeBytes / 1024)
	msg, ok := s.store.Append(sessionID, domain.Message{
		Role:       domain.RoleFile,
		FileName:   fileName,
		FileSizeKB: sizeKB,
	})
	if !ok {
		return domain.Message{}, ErrSessionNotFound
	}
	s.sim.ReplyToFile(sessionID, fileName, sizeKB)
	return msg, nil
}

// NewSession crea una sesion nueva y la deja activa.
func (s *ChatService) NewSession() (domain.Session, error) {
	if s == nil || s.store == nil {
		return domain.Session{}, ErrChatServiceNotConfigured
	}
	return s.store.NewSession(), nil
}

// Select mueve el puntero de sesion activa; ids desconocidos son un no-op.
func (s *ChatService) Select(sessionID int) {
	if s == nil || s.store == nil {
		return
	}
	s.store.Select(sessionID)
}

// Timeline devuelve la linea de tiempo de una sesion.
func (s *ChatService) Timeline(sessionID int) (domain.Session, error) {
	if s == nil || s.store == nil {
		return domain.Session{}, ErrChatServiceNotConfigured
	}
	sess, ok := s.store.Session(sessionID)
	if !ok {
		return domain.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// Summaries lista las sesiones existentes.
func (s *ChatService) Summaries() []domain.SessionSummary {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Summaries()
}

// SplashVisible evalua la visibilidad del splash para la sesion activa.
func (s *ChatService) SplashVisible() bool {
	if s == nil || s.store == nil {
		return false
	}
	return chat.SplashVisible(s.store.Active())
}
