package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"eatsmart-api/internal/domain"
)

// ErrNoResult indica que el slot de ultimo resultado esta vacio.
var ErrNoResult = errors.New("no scan result stored")

// ResultStore guarda el ultimo resultado de analisis en un slot unico.
// Contrato: last-write-wins, sin versionado; un segundo scan sobrescribe al
// primero aunque su vista de resultados no lo haya leido todavia.
type ResultStore interface {
	Save(ctx context.Context, result domain.ScanResult) error
	Last(ctx context.Context) (domain.ScanResult, error)
}

type memoryResultStore struct {
	mu     sync.Mutex
	result *domain.ScanResult
}

func NewMemoryResultStore() ResultStore {
	return &memoryResultStore{}
}

func (s *memoryResultStore) Save(_ context.Context, result domain.ScanResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
	return nil
}

func (s *memoryResultStore) Last(_ context.Context) (domain.ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.ScanResult{}, ErrNoResult
	}
	return *s.result, nil
}

type redisResultStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisResultStore guarda el slot bajo una clave fija en Redis, de modo que
// el resultado sobrevive reinicios del proceso entre captura y lectura.
func NewRedisResultStore(client *redis.Client) ResultStore {
	if client == nil {
		return nil
	}
	return &redisResultStore{
		client: client,
		key:    "scan:result",
		ttl:    24 * time.Hour,
	}
}

func (s *redisResultStore) Save(ctx context.Context, result domain.ScanResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.key, payload, s.ttl).Err()
}

func (s *redisResultStore) Last(ctx context.Context) (domain.ScanResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ScanResult{}, ErrNoResult
	}
	if err != nil {
		return domain.ScanResult{}, err
	}
	var result domain.ScanResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return domain.ScanResult{}, err
	}
	return result, nil
}
