package chat

import (
	"context"
	"sync"
	"time"

	"eatsmart-api/internal/domain"
)

// DefaultSplashInterval es el ritmo de rotacion del saludo multilingue.
const DefaultSplashInterval = 3 * time.Second

// SplashWords son los saludos que rota la pantalla antes de la primera
// interaccion del usuario.
var SplashWords = []string{
	"नमस्ते",
	"Namaste",
	"नमस्कार",
	"Hola",
	"Bonjour",
	"Ciao",
	"Olá",
	"こんにちは",
	"안녕하세요",
	"您好",
	"Привет",
	"سلام",
	"হ্যালো",
	"வணக்கம்",
	"ਸਤ ਸ੍ਰੀ ਅਕਾਲ",
	"પ્રણામ",
	"ಹಲೋ",
	"ഹലോ",
	"สวัสดี",
	"שלום",
}

// SplashVisible es una funcion pura sobre la linea de tiempo: el splash se
// muestra solo cuando la sesion tiene exactamente el saludo sembrado del bot.
// Nunca se guarda como estado independiente para que no diverja del timeline.
func SplashVisible(sess domain.Session) bool {
	return len(sess.Messages) == 1 && sess.Messages[0].Role == domain.RoleBot
}

// Presenter rota el indice de la palabra de splash en un intervalo fijo.
// No posee estado persistente mas alla del indice actual.
type Presenter struct {
	mu       sync.Mutex
	words    []string
	idx      int
	interval time.Duration
}

func NewPresenter(words []string, interval time.Duration) *Presenter {
	if len(words) == 0 {
		words = SplashWords
	}
	if interval <= 0 {
		interval = DefaultSplashInterval
	}
	return &Presenter{words: words, interval: interval}
}

// Start arranca el ciclo de rotacion. El ticker se detiene al cancelar el
// contexto para no fugar un timer contra una vista desmontada.
func (p *Presenter) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Advance()
			}
		}
	}()
}

// Advance mueve el indice una posicion, con wrap modulo la lista.
func (p *Presenter) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.idx = (p.idx + 1) % len(p.words)
}

// Word devuelve la palabra visible en este momento.
func (p *Presenter) Word() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.words[p.idx]
}
