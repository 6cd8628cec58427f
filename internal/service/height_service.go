package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// mockHeightCm es la estimacion fija que devuelve el flujo simulado.
const mockHeightCm = 175

// DefaultHeightDelay imita la latencia de un estimador real.
const DefaultHeightDelay = 1500 * time.Millisecond

var ErrHeightServiceNotConfigured = errors.New("height service not configured")

// HeightService simula la estimacion de estatura a partir de una imagen de
// cuerpo completo. No hay inferencia real: retraso fijo y resultado fijo.
type HeightService struct {
	delay time.Duration
}

func NewHeightService(delay time.Duration) *HeightService {
	if delay <= 0 {
		delay = DefaultHeightDelay
	}
	return &HeightService{delay: delay}
}

// Estimate espera el retraso configurado y devuelve la estatura simulada.
// Respeta la cancelacion del contexto durante la espera.
func (s *HeightService) Estimate(ctx context.Context, imageBase64 string) (int, error) {
	if s == nil {
		return 0, ErrHeightServiceNotConfigured
	}
	if strings.TrimSpace(imageBase64) == "" {
		return 0, fmt.Errorf("%w: missing image", ErrScanInvalidInput)
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-time.After(s.delay):
	}
	return mockHeightCm, nil
}
