package analysis

import (
	"context"

	"eatsmart-api/internal/domain"
)

// MockClient permite tests sin llamar al analizador real.
type MockClient struct {
	Info domain.AdditiveInfo
	Err  error

	LastImage string
	LastMode  string
}

func (m *MockClient) Analyze(_ context.Context, imageBase64, mode string) (domain.AdditiveInfo, error) {
	m.LastImage = imageBase64
	m.LastMode = mode
	return m.Info, m.Err
}
