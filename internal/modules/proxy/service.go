package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"reviewrelay/internal/config"
)

const apiVersionHeader = "x-api-version"

// Result carries the upstream response verbatim: status, content type,
// and body pass through untouched, error statuses included.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

// Service forwards completion payloads to the configured upstream API,
// attaching the server-held credential. Clients never see the key.
type Service struct {
	upstreamURL  string
	apiKey       string
	apiVersion   string
	defaultModel string
	client       *http.Client
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		upstreamURL:  cfg.UpstreamURL,
		apiKey:       cfg.UpstreamAPIKey,
		apiVersion:   cfg.APIVersion,
		defaultModel: cfg.DefaultModel,
		client:       &http.Client{Timeout: cfg.UpstreamTimeout},
	}
}

// Forward posts the payload upstream, injecting the default model when
// the caller did not pick one. No retries; a transport failure is the
// caller's 500.
func (s *Service) Forward(ctx context.Context, payload map[string]any) (*Result, error) {
	if _, ok := payload["model"]; !ok {
		payload["model"] = s.defaultModel
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode upstream payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstreamURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set(apiVersionHeader, s.apiVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &Result{
		Status:      resp.StatusCode,
		ContentType: contentType,
		Body:        respBody,
	}, nil
}
