// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

type httpKeyServiceAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPKeyServiceAdapter constructs an HTTP/REST implementation of
// [KeyServiceAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying client with the resolved base
// URL and request timeout. A token present in cfg is stored immediately.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPKeyServiceAdapter(cfg config.Adapter, log *logger.Logger) (KeyServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	a := &httpKeyServiceAdapter{client: client, logger: log}
	a.SetToken(cfg.AuthToken)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [KeyServiceAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpKeyServiceAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [KeyServiceAdapter].
func (h *httpKeyServiceAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpKeyServiceAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// GenerateKeyPair implements [KeyServiceAdapter].
func (h *httpKeyServiceAdapter) GenerateKeyPair(ctx context.Context) (models.KeyPairResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		Post("/api/crypto/generate-keypair")
	if err != nil {
		return models.KeyPairResponse{}, fmt.Errorf("generate keypair request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyPairResponse{}, err
	}

	var out models.KeyPairResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.KeyPairResponse{}, fmt.Errorf("generate keypair decode: %w", err)
	}
	return out, nil
}

// PublishPublicKey implements [KeyServiceAdapter].
func (h *httpKeyServiceAdapter) PublishPublicKey(ctx context.Context, req models.PublishKeyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/crypto/public-key")
	if err != nil {
		return fmt.Errorf("publish public key request: %w", err)
	}

	return mapHTTPError(resp)
}

// LookupPublicKey implements [KeyServiceAdapter].
func (h *httpKeyServiceAdapter) LookupPublicKey(ctx context.Context, accountID string) (models.PublicKeyResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/crypto/public-key/" + url.PathEscape(accountID))
	if err != nil {
		return models.PublicKeyResponse{}, fmt.Errorf("lookup public key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicKeyResponse{}, err
	}

	var out models.PublicKeyResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PublicKeyResponse{}, fmt.Errorf("lookup public key decode: %w", err)
	}
	return out, nil
}

// DecryptPreview implements [KeyServiceAdapter].
func (h *httpKeyServiceAdapter) DecryptPreview(ctx context.Context, req models.DecryptPreviewRequest) (models.DecryptPreviewResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/messages/decrypt-preview")
	if err != nil {
		return models.DecryptPreviewResponse{}, fmt.Errorf("decrypt preview request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DecryptPreviewResponse{}, err
	}

	var out models.DecryptPreviewResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.DecryptPreviewResponse{}, fmt.Errorf("decrypt preview decode: %w", err)
	}
	return out, nil
}
