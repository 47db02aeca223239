// Package rest implements the request dispatcher: one HTTP call per user
// action, mapped to Ok / ServerRejection / NetworkFailure / AuthExpired.
// Single attempt, no retries, no backoff, no timeout beyond the platform
// default.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/metrics"
)

// Client dispatches requests for a single feature console.
type Client struct {
	httpc   *http.Client
	feature string
	log     zerolog.Logger
}

// NewClient returns a dispatcher labelled with the given feature name.
func NewClient(feature string, log zerolog.Logger) *Client {
	return &Client{
		httpc:   &http.Client{},
		feature: feature,
		log:     log.With().Str("feature", feature).Logger(),
	}
}

// Do performs a single attempt against url and decodes a 2xx JSON body into
// out (skipped when out is nil or the body is empty).
//
// Error mapping:
//   - transport failure        -> wrapped domain.ErrNetwork
//   - 401 with a bearer token  -> domain.ErrAuthExpired
//   - any other non-2xx        -> *domain.RequestError with the body's
//     message field, or a generic fallback
func (c *Client) Do(ctx context.Context, method, url, token string, body, out any) error {
	raw, status, err := c.roundTrip(ctx, method, url, token, body)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && token != "" {
		metrics.RequestsTotal.WithLabelValues(c.feature, metrics.OutcomeAuthExpired).Inc()
		c.log.Debug().Str("url", url).Msg("bearer token rejected")
		return domain.ErrAuthExpired
	}
	if status >= 400 {
		metrics.RequestsTotal.WithLabelValues(c.feature, metrics.OutcomeRejected).Inc()
		return &domain.RequestError{Status: status, Message: errorMessage(raw)}
	}

	metrics.RequestsTotal.WithLabelValues(c.feature, metrics.OutcomeOK).Inc()
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Text performs a single attempt and returns the status code and body
// verbatim, without mapping non-2xx codes to errors. Used by the probe
// endpoints, which display whatever the server said.
func (c *Client) Text(ctx context.Context, method, url, token string) (int, string, error) {
	raw, status, err := c.roundTrip(ctx, method, url, token, nil)
	if err != nil {
		return 0, "", err
	}
	outcome := metrics.OutcomeOK
	if status >= 400 {
		outcome = metrics.OutcomeRejected
	}
	metrics.RequestsTotal.WithLabelValues(c.feature, outcome).Inc()
	return status, string(raw), nil
}

func (c *Client) roundTrip(ctx context.Context, method, url, token string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(c.feature, metrics.OutcomeNetworkErr).Inc()
		c.log.Error().Err(err).
			Str("method", method).
			Str("url", url).
			Str("request_id", requestID).
			Msg("request failed")
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.RequestDuration.WithLabelValues(c.feature).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(c.feature, metrics.OutcomeNetworkErr).Inc()
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("url", url).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("request completed")

	return raw, resp.StatusCode, nil
}

// errorMessage extracts the server's message field from an error body,
// falling back to a generic string. Some of the demo backends use "message",
// others "error".
func errorMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return "request failed"
}
