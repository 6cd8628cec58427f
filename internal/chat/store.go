package chat

import (
	"sync"
	"time"

	"eatsmart-api/internal/domain"
)

// titleBudget es el presupuesto de caracteres para titulos derivados del
// primer mensaje del usuario.
const titleBudget = 20

// typingID es el id sentinel para placeholders de escritura; nunca sale del
// contador por sesion porque el placeholder es siempre transitorio.
const typingID = 999

// Store es el dueño de las sesiones de conversacion y del puntero de sesion
// activa. Los contadores de ids viven en la instancia, nunca a nivel de
// paquete, para que el store sea testeable de forma aislada.
type Store struct {
	mu       sync.Mutex
	sessions []*domain.Session
	activeID int
	nextSess int
	nextMsg  map[int]int
	greeting string
	now      func() time.Time
}

// NewStore crea un store con una sesion inicial sembrada con el saludo del bot.
func NewStore(greeting string) *Store {
	s := &Store{
		nextSess: 1,
		nextMsg:  make(map[int]int),
		greeting: greeting,
		now:      time.Now,
	}
	s.mu.Lock()
	s.createSessionLocked()
	s.mu.Unlock()
	return s
}

// NewSession crea una sesion nueva, la siembra con el saludo y la marca activa.
// Siempre tiene exito.
func (s *Store) NewSession() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.createSessionLocked())
}

func (s *Store) createSessionLocked() *domain.Session {
	id := s.nextSess
	s.nextSess++
	sess := &domain.Session{
		ID:    id,
		Title: domain.DefaultSessionTitle,
		Messages: []domain.Message{{
			ID:   1,
			Role: domain.RoleBot,
			Text: s.greeting,
			Time: s.timestamp(),
		}},
	}
	// El saludo ocupa el slot 1; el contador de la sesion arranca en 2.
	s.nextMsg[id] = 2
	s.sessions = append(s.sessions, sess)
	s.activeID = id
	return sess
}

// Select mueve el puntero activo a la sesion indicada. Si el id no existe es
// un no-op silencioso: la UI solo ofrece ids validos.
func (s *Store) Select(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findLocked(id) != nil {
		s.activeID = id
	}
}

// ActiveID devuelve el id de la sesion activa.
func (s *Store) ActiveID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active devuelve una copia de la sesion activa.
func (s *Store) Active() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.findLocked(s.activeID))
}

// Session devuelve una copia de la sesion indicada.
func (s *Store) Session(id int) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findLocked(id)
	if sess == nil {
		return domain.Session{}, false
	}
	return copySession(sess), true
}

// Summaries lista las sesiones en orden de creacion.
func (s *Store) Summaries() []domain.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SessionSummary, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, domain.SessionSummary{
			ID:       sess.ID,
			Title:    sess.Title,
			Messages: len(sess.Messages),
			Active:   sess.ID == s.activeID,
		})
	}
	return out
}

// Append inserta un mensaje al final de la linea de tiempo de la sesion,
// asignando id y timestamp si faltan. El store no valida la forma del
// mensaje: construir mensajes bien formados es contrato del llamador.
func (s *Store) Append(sessionID int, msg domain.Message) (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findLocked(sessionID)
	if sess == nil {
		return domain.Message{}, false
	}
	msg = s.stampLocked(sessionID, msg)
	sess.Messages = append(sess.Messages, msg)
	return msg, true
}

// AppendTyping agrega el placeholder de escritura garantizando que exista a lo
// sumo uno en la sesion: cualquier placeholder previo se retira primero.
func (s *Store) AppendTyping(sessionID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findLocked(sessionID)
	if sess == nil {
		return false
	}
	sess.Messages = withoutTyping(sess.Messages)
	sess.Messages = append(sess.Messages, domain.Message{ID: typingID, Role: domain.RoleTyping})
	return true
}

// Settle retira todos los placeholders de la linea de tiempo ACTUAL y agrega
// las respuestas, en una sola seccion critica. El filtrado sobre el estado al
// momento de disparo evita pisar mensajes agregados mientras corria el timer.
func (s *Store) Settle(sessionID int, replies ...domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findLocked(sessionID)
	if sess == nil {
		return false
	}
	sess.Messages = withoutTyping(sess.Messages)
	for _, msg := range replies {
		sess.Messages = append(sess.Messages, s.stampLocked(sessionID, msg))
	}
	return true
}

// RenameIfDefault reemplaza el titulo placeholder por el candidato truncado al
// presupuesto de caracteres. Despues del primer renombre real es un no-op.
func (s *Store) RenameIfDefault(sessionID int, candidate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findLocked(sessionID)
	if sess == nil || sess.Title != domain.DefaultSessionTitle {
		return
	}
	sess.Title = truncateTitle(candidate)
}

func (s *Store) findLocked(id int) *domain.Session {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

func (s *Store) stampLocked(sessionID int, msg domain.Message) domain.Message {
	if msg.Role != domain.RoleTyping && msg.ID == 0 {
		msg.ID = s.nextMsg[sessionID]
		s.nextMsg[sessionID]++
	}
	if msg.Role != domain.RoleTyping && msg.Time == "" {
		msg.Time = s.timestamp()
	}
	return msg
}

func (s *Store) timestamp() string {
	return s.now().Format("3:04 PM")
}

func withoutTyping(msgs []domain.Message) []domain.Message {
	out := msgs[:0]
	for _, m := range msgs {
		if m.Role != domain.RoleTyping {
			out = append(out, m)
		}
	}
	return out
}

func truncateTitle(candidate string) string {
	runes := []rune(candidate)
	if len(runes) > titleBudget {
		runes = runes[:titleBudget]
	}
	return string(runes) + "…"
}

func copySession(sess *domain.Session) domain.Session {
	if sess == nil {
		return domain.Session{}
	}
	out := *sess
	out.Messages = append([]domain.Message(nil), sess.Messages...)
	return out
}
