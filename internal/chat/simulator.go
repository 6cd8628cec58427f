package chat

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"eatsmart-api/internal/domain"
)

// Retrasos por defecto de cada variante de respuesta simulada.
const (
	DefaultTextDelay  = 1500 * time.Millisecond
	DefaultFileDelay  = 1000 * time.Millisecond
	DefaultScoreDelay = 1800 * time.Millisecond
)

// DefaultReplyFormat es la respuesta enlatada del bot de demo.
const DefaultReplyFormat = "I’m still a demo, but here’s a canned response to: “%s”"

// SimulatorConfig ajusta los retrasos y el texto sintetizado. Los campos en
// cero toman los valores por defecto.
type SimulatorConfig struct {
	TextDelay   time.Duration
	FileDelay   time.Duration
	ScoreDelay  time.Duration
	ReplyFormat string
}

// Simulator produce la ilusion de respuestas asincronas del bot sin inferencia
// real: placeholder de escritura, retraso fijo y un mensaje sintetizado.
type Simulator struct {
	store  *Store
	logger *zap.Logger
	cfg    SimulatorConfig
	wg     sync.WaitGroup
}

func NewSimulator(store *Store, logger *zap.Logger, cfg SimulatorConfig) *Simulator {
	if cfg.TextDelay <= 0 {
		cfg.TextDelay = DefaultTextDelay
	}
	if cfg.FileDelay <= 0 {
		cfg.FileDelay = DefaultFileDelay
	}
	if cfg.ScoreDelay <= 0 {
		cfg.ScoreDelay = DefaultScoreDelay
	}
	if cfg.ReplyFormat == "" {
		cfg.ReplyFormat = DefaultReplyFormat
	}
	return &Simulator{store: store, logger: logger, cfg: cfg}
}

// Reply agenda una respuesta sintetizada al prompt. El id de sesion queda
// ligado al momento de agendar: la respuesta cae en la sesion que origino el
// envio aunque el usuario cambie de sesion antes del disparo.
func (s *Simulator) Reply(sessionID int, prompt string) {
	if !s.store.AppendTyping(sessionID) {
		s.logger.Warn("reply scheduled for unknown session", zap.Int("session_id", sessionID))
		return
	}
	reply := domain.Message{
		Role: domain.RoleBot,
		Text: fmt.Sprintf(s.cfg.ReplyFormat, prompt),
	}
	s.schedule(s.cfg.TextDelay, sessionID, reply)
}

// ReplyToFile agenda la secuencia de respuesta a un archivo adjunto: tras un
// breve retraso arranca la respuesta estandar citando nombre y tamaño.
func (s *Simulator) ReplyToFile(sessionID int, fileName string, sizeKB int) {
	s.wg.Add(1)
	time.AfterFunc(s.cfg.FileDelay, func() {
		defer s.wg.Done()
		s.Reply(sessionID, fmt.Sprintf("Received **%s** (%d KB)", fileName, sizeKB))
	})
}

// CompleteWithScore agenda el cierre del flujo de analisis de documentos: un
// score card seguido del mensaje de insights, en un solo parche de timeline.
func (s *Simulator) CompleteWithScore(sessionID int, score int, insight string) {
	if !s.store.AppendTyping(sessionID) {
		s.logger.Warn("score reply scheduled for unknown session", zap.Int("session_id", sessionID))
		return
	}
	s.wg.Add(1)
	time.AfterFunc(s.cfg.ScoreDelay, func() {
		defer s.wg.Done()
		s.store.Settle(sessionID,
			domain.Message{Role: domain.RoleScore, Score: score},
			domain.Message{Role: domain.RoleBot, Text: insight},
		)
	})
}

func (s *Simulator) schedule(delay time.Duration, sessionID int, reply domain.Message) {
	s.wg.Add(1)
	time.AfterFunc(delay, func() {
		defer s.wg.Done()
		// Filtrado sobre la linea de tiempo actual, nunca un replace ciego.
		if s.store.Settle(sessionID, reply) {
			s.logger.Debug("reply settled", zap.Int("session_id", sessionID))
		}
	})
}

// Wait bloquea hasta que todas las respuestas agendadas hayan aterrizado.
func (s *Simulator) Wait() {
	s.wg.Wait()
}
