package service

import (
	"errors"
	"fmt"
	"strings"

	"eatsmart-api/internal/chat"
	"eatsmart-api/internal/domain"
)

// ReportGreeting siembra la sesion del reporte de salud.
const ReportGreeting = "Hi! Please upload a medical document and I’ll generate insights."

// ReportReplyFormat es la variante de respuesta enlatada del bot de reportes.
const ReportReplyFormat = "I’m a demo bot – here’s a canned reply to: “%s”"

// mockHealthScore es el puntaje fijo del flujo de analisis de documentos.
const mockHealthScore = 78

var ErrReportServiceNotConfigured = errors.New("report service not configured")

// ReportService maneja el chat del reporte de salud: una sola sesion con el
// flujo de documento que produce score card mas insights.
type ReportService struct {
	store *chat.Store
	sim   *chat.Simulator
}

func NewReportService(store *chat.Store, sim *chat.Simulator) *ReportService {
	return &ReportService{store: store, sim: sim}
}

// SendText agrega el mensaje del usuario y agenda la respuesta enlatada.
func (s *ReportService) SendText(text string) (domain.Message, error) {
	if s == nil || s.store == nil {
		return domain.Message{}, ErrReportServiceNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	sessionID := s.store.ActiveID()
	msg, ok := s.store.Append(sessionID, domain.Message{Role: domain.RoleUser, Text: text})
	if !ok {
		return domain.Message{}, ErrSessionNotFound
	}
	s.sim.Reply(sessionID, text)
	return msg, nil
}

// AttachDocument registra el documento y agenda el cierre del analisis: un
// score card seguido del mensaje de insights.
func (s *ReportService) AttachDocument(fileName string, sizeBytes int64) (domain.Message, error) {
	if s == nil || s.store == nil {
		return domain.Message{}, ErrReportServiceNotConfigured
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	sessionID := s.store.ActiveID()
	msg, ok := s.store.Append(sessionID, domain.Message{
		Role:       domain.RoleFile,
		FileName:   fileName,
		FileSizeKB: int(sizeBytes / 1024),
	})
	if !ok {
		return domain.Message{}, ErrSessionNotFound
	}
	s.sim.CompleteWithScore(sessionID, mockHealthScore, reportInsight(mockHealthScore))
	return msg, nil
}

// Timeline devuelve la linea de tiempo del reporte.
func (s *ReportService) Timeline() (domain.Session, error) {
	if s == nil || s.store == nil {
		return domain.Session{}, ErrReportServiceNotConfigured
	}
	return s.store.Active(), nil
}

// SplashVisible evalua la visibilidad del splash del reporte.
func (s *ReportService) SplashVisible() bool {
	if s == nil || s.store == nil {
		return false
	}
	return chat.SplashVisible(s.store.Active())
}

func reportInsight(score int) string {
	return fmt.Sprintf("Your overall health score is **%d/100**. Blood pressure and cholesterol look good, but your recent HbA1c suggests you should monitor glucose levels more closely.", score)
}
