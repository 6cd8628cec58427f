package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eatsmart-api/internal/domain"
)

// Client define la interfaz hacia el analizador de ingredientes.
type Client interface {
	Analyze(ctx context.Context, imageBase64, mode string) (domain.AdditiveInfo, error)
}

// UpstreamError conserva el detalle que devuelve el analizador en fallas,
// para mostrarlo tal cual al usuario.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("analyzer http error: status=%d detail=%s", e.Status, e.Detail)
}

// HTTPClient implementa Client contra el endpoint HTTP del analizador.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient construye un cliente apuntando al servicio de analisis.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Analyze(ctx context.Context, imageBase64, mode string) (domain.AdditiveInfo, error) {
	reqBody := analyzeRequest{Image: imageBase64, Mode: mode}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return domain.AdditiveInfo{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ingredients/analyze", bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.AdditiveInfo{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.AdditiveInfo{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AdditiveInfo{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		detail := "Failed to analyze image"
		var er errorResponse
		if err := json.Unmarshal(respBody, &er); err == nil && er.Detail != "" {
			detail = er.Detail
		}
		return domain.AdditiveInfo{}, &UpstreamError{Status: resp.StatusCode, Detail: detail}
	}

	var ar analyzeResponse
	if err := json.Unmarshal(respBody, &ar); err != nil {
		return domain.AdditiveInfo{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if err := ar.AdditiveInfo.Validate(); err != nil {
		return domain.AdditiveInfo{}, fmt.Errorf("analyzer response: %w", err)
	}

	return ar.AdditiveInfo, nil
}

type analyzeRequest struct {
	Image string `json:"image"`
	Mode  string `json:"mode"`
}

type analyzeResponse struct {
	AdditiveInfo domain.AdditiveInfo `json:"additive_info"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
