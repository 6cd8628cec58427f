package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"eatsmart-api/internal/analysis"
	"eatsmart-api/internal/domain"
	"eatsmart-api/internal/repository"
)

func testAdditiveInfo() domain.AdditiveInfo {
	return domain.AdditiveInfo{
		CommonName:   "Tartrazine",
		ChemicalName: "Trisodium salt",
		Category:     "Colorant",
	}
}

func TestScanServiceAnalyzeStoresResult(t *testing.T) {
	client := &analysis.MockClient{Info: testAdditiveInfo()}
	results := repository.NewMemoryResultStore()
	svc := NewScanService(client, results, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", domain.ScanModeFood)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ID == "" || result.Mode != domain.ScanModeFood {
		t.Fatalf("unexpected result envelope: %+v", result)
	}
	if client.LastMode != domain.ScanModeFood {
		t.Fatalf("expected mode forwarded, got %q", client.LastMode)
	}

	stored, err := svc.LastResult(context.Background())
	if err != nil {
		t.Fatalf("expected stored result, got %v", err)
	}
	if stored.ID != result.ID || stored.AdditiveInfo.CommonName != "Tartrazine" {
		t.Fatalf("expected slot to hold result, got %+v", stored)
	}
}

func TestScanServiceAnalyzeStripsDataURL(t *testing.T) {
	client := &analysis.MockClient{Info: testAdditiveInfo()}
	svc := NewScanService(client, repository.NewMemoryResultStore(), zap.NewNop())

	if _, err := svc.Analyze(context.Background(), "data:image/jpeg;base64,aW1hZ2U=", domain.ScanModeBarcode); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.LastImage != "aW1hZ2U=" {
		t.Fatalf("expected data-URL prefix stripped, got %q", client.LastImage)
	}
}

func TestScanServiceAnalyzeValidation(t *testing.T) {
	client := &analysis.MockClient{Info: testAdditiveInfo()}
	svc := NewScanService(client, repository.NewMemoryResultStore(), zap.NewNop())

	if _, err := svc.Analyze(context.Background(), "  ", domain.ScanModeFood); !errors.Is(err, ErrScanInvalidInput) {
		t.Fatalf("expected ErrScanInvalidInput for empty image, got %v", err)
	}
	if _, err := svc.Analyze(context.Background(), "aW1hZ2U=", "selfie"); !errors.Is(err, ErrScanInvalidInput) {
		t.Fatalf("expected ErrScanInvalidInput for unknown mode, got %v", err)
	}
	if client.LastImage != "" {
		t.Fatalf("expected client untouched on validation failure")
	}
}

func TestScanServiceAnalyzeUpstreamFailureNotStored(t *testing.T) {
	client := &analysis.MockClient{Err: &analysis.UpstreamError{Status: 500, Detail: "bad image"}}
	results := repository.NewMemoryResultStore()
	svc := NewScanService(client, results, zap.NewNop())

	_, err := svc.Analyze(context.Background(), "aW1hZ2U=", domain.ScanModeFood)
	var upstream *analysis.UpstreamError
	if !errors.As(err, &upstream) || upstream.Detail != "bad image" {
		t.Fatalf("expected upstream error preserved, got %v", err)
	}

	if _, err := svc.LastResult(context.Background()); !errors.Is(err, repository.ErrNoResult) {
		t.Fatalf("expected empty slot after failure, got %v", err)
	}
}

func TestScanServiceLastWriteWins(t *testing.T) {
	client := &analysis.MockClient{Info: testAdditiveInfo()}
	svc := NewScanService(client, repository.NewMemoryResultStore(), zap.NewNop())

	first, _ := svc.Analyze(context.Background(), "aW1hZ2U=", domain.ScanModeFood)
	second, _ := svc.Analyze(context.Background(), "b3RyYQ==", domain.ScanModeIngredients)

	stored, err := svc.LastResult(context.Background())
	if err != nil {
		t.Fatalf("expected stored result, got %v", err)
	}
	if stored.ID == first.ID || stored.ID != second.ID {
		t.Fatalf("expected second scan to overwrite first")
	}
}
