package chat

import (
	"context"
	"testing"
	"time"

	"eatsmart-api/internal/domain"
)

func TestSplashVisible(t *testing.T) {
	store := NewStore(testGreeting)
	if !SplashVisible(store.Active()) {
		t.Fatalf("expected splash visible on seeded session")
	}

	store.Append(1, domain.Message{Role: domain.RoleUser, Text: "hola"})
	if SplashVisible(store.Active()) {
		t.Fatalf("expected splash hidden after first user message")
	}

	// Nunca vuelve a ser visible para esa sesion.
	store.Settle(1, domain.Message{Role: domain.RoleBot, Text: "reply"})
	if SplashVisible(store.Active()) {
		t.Fatalf("expected splash to stay hidden")
	}
}

func TestSplashVisibleRequiresBotSeed(t *testing.T) {
	sess := domain.Session{Messages: []domain.Message{{Role: domain.RoleUser, Text: "hola"}}}
	if SplashVisible(sess) {
		t.Fatalf("expected splash hidden when sole message is not bot")
	}
}

func TestPresenterAdvanceWraps(t *testing.T) {
	words := []string{"a", "b", "c"}
	p := NewPresenter(words, time.Second)

	if p.Word() != "a" {
		t.Fatalf("expected first word, got %q", p.Word())
	}
	for i := 0; i < len(words); i++ {
		p.Advance()
	}
	if p.Word() != "a" {
		t.Fatalf("expected wrap back to first word, got %q", p.Word())
	}
}

func TestPresenterStartStopsOnCancel(t *testing.T) {
	p := NewPresenter([]string{"a", "b"}, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	time.Sleep(10 * time.Millisecond)
	cancel()
	time.Sleep(5 * time.Millisecond)

	// Con el ticker cancelado el indice queda congelado.
	before := p.Word()
	time.Sleep(10 * time.Millisecond)
	if p.Word() != before {
		t.Fatalf("expected presenter frozen after cancel")
	}
}

func TestPresenterDefaults(t *testing.T) {
	p := NewPresenter(nil, 0)
	if p.Word() != SplashWords[0] {
		t.Fatalf("expected default word list, got %q", p.Word())
	}
	if p.interval != DefaultSplashInterval {
		t.Fatalf("expected default interval, got %v", p.interval)
	}
}
