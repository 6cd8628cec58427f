package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eatsmart-api/internal/analysis"
	"eatsmart-api/internal/domain"
	"eatsmart-api/internal/repository"
)

var (
	ErrScanServiceNotConfigured = errors.New("scan service not configured")
	ErrScanInvalidInput         = errors.New("scan invalid input")
)

// ScanService ejecuta el analisis de imagen contra el analizador y guarda el
// resultado en el slot de ultimo resultado. Sin reintentos automaticos: ante
// una falla el usuario vuelve a invocar el analisis manualmente.
type ScanService struct {
	client  analysis.Client
	results repository.ResultStore
	logger  *zap.Logger
}

func NewScanService(client analysis.Client, results repository.ResultStore, logger *zap.Logger) *ScanService {
	return &ScanService{client: client, results: results, logger: logger}
}

// Analyze valida la peticion, consulta al analizador y sobrescribe el slot.
func (s *ScanService) Analyze(ctx context.Context, imageBase64, mode string) (domain.ScanResult, error) {
	if s == nil || s.client == nil || s.results == nil {
		return domain.ScanResult{}, ErrScanServiceNotConfigured
	}

	imageBase64 = stripDataURL(strings.TrimSpace(imageBase64))
	if imageBase64 == "" {
		return domain.ScanResult{}, fmt.Errorf("%w: missing image", ErrScanInvalidInput)
	}
	if !domain.ValidScanMode(mode) {
		return domain.ScanResult{}, fmt.Errorf("%w: unknown mode %q", ErrScanInvalidInput, mode)
	}

	info, err := s.client.Analyze(ctx, imageBase64, mode)
	if err != nil {
		s.logger.Warn("analysis failed", zap.String("mode", mode), zap.Error(err))
		return domain.ScanResult{}, err
	}

	result := domain.ScanResult{
		ID:           uuid.NewString(),
		Mode:         mode,
		AdditiveInfo: info,
		CapturedAt:   time.Now().UTC(),
	}
	if err := s.results.Save(ctx, result); err != nil {
		return domain.ScanResult{}, fmt.Errorf("save scan result: %w", err)
	}

	s.logger.Info("analysis stored", zap.String("mode", mode), zap.String("result_id", result.ID))
	return result, nil
}

// LastResult lee el slot; devuelve repository.ErrNoResult cuando esta vacio
// para que la vista de resultados redirija a la captura.
func (s *ScanService) LastResult(ctx context.Context) (domain.ScanResult, error) {
	if s == nil || s.results == nil {
		return domain.ScanResult{}, ErrScanServiceNotConfigured
	}
	return s.results.Last(ctx)
}

// stripDataURL tolera imagenes con prefijo data-URL y se queda con el base64.
func stripDataURL(image string) string {
	if idx := strings.Index(image, ","); idx >= 0 && strings.HasPrefix(image, "data:") {
		return image[idx+1:]
	}
	return image
}
