package domain

// Role identifica el tipo semantico de un mensaje dentro de una sesion.
type Role string

const (
	RoleUser   Role = "user"
	RoleBot    Role = "bot"
	RoleTyping Role = "typing"
	RoleFile   Role = "file"
	RoleScore  Role = "score"
)

// DefaultSessionTitle es el titulo placeholder hasta el primer mensaje del usuario.
const DefaultSessionTitle = "New Chat"

// Message es una entrada inmutable en la linea de tiempo de una sesion.
// Text aplica a user/bot, FileName y FileSizeKB solo a file, Score solo a score.
type Message struct {
	ID         int    `json:"id"`
	Role       Role   `json:"role"`
	Text       string `json:"text,omitempty"`
	Time       string `json:"time,omitempty"`
	FileName   string `json:"file_name,omitempty"`
	FileSizeKB int    `json:"file_size_kb,omitempty"`
	Score      int    `json:"score,omitempty"`
}

// Session es un hilo de conversacion independiente con su propia linea de tiempo.
type Session struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
}

// SessionSummary es la vista liviana usada para listar sesiones.
type SessionSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Messages int    `json:"messages"`
	Active   bool   `json:"active"`
}

// HasTyping reporta si la linea de tiempo contiene un placeholder de escritura.
func (s Session) HasTyping() bool {
	for _, m := range s.Messages {
		if m.Role == RoleTyping {
			return true
		}
	}
	return false
}
