// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/config"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/httpclient"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/metrics"
)

// TokenSource supplies the bearer token attached to every request.
// Returning an empty token is allowed for unauthenticated endpoints.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// RequestRecorder receives one record per completed request, alongside the
// prometheus counters. *observability.Observability satisfies it.
type RequestRecorder interface {
	RecordRequest(ctx context.Context, resource, status string)
	RecordRequestDuration(ctx context.Context, duration time.Duration, resource string)
}

// Envelope is the uniform response shape of every backend endpoint.
// success=false is the one error signal consumed by every screen.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type Client struct {
	baseURL  string
	http     *httpclient.Client
	tokens   TokenSource
	logger   logger.Logger
	recorder RequestRecorder
}

func NewClient(cfg config.APIConfig, tokens TokenSource, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpclient.NewClient(config.GetDuration(cfg.Timeout)),
		tokens:  tokens,
		logger:  log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// WithRecorder attaches an additional per-request recorder and returns the
// client for chaining.
func (c *Client) WithRecorder(r RequestRecorder) *Client {
	c.recorder = r
	return c
}

// do issues one request against the backend and records the outcome on both
// metric surfaces. The resource label only feeds logging and metrics.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, resource string) error {
	start := time.Now()
	err := c.send(ctx, method, path, query, body, out, resource, start)
	if c.recorder != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		c.recorder.RecordRequest(ctx, resource, status)
		c.recorder.RecordRequestDuration(ctx, time.Since(start), resource)
	}
	return err
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out interface{}, resource string, start time.Time) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewDecodeFailedError(err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.APIRequestsFailed.WithLabelValues(resource, string(errors.ErrCodeTransport)).Inc()
		return errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	metrics.APIRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.APIRequestsFailed.WithLabelValues(resource, string(errors.ErrCodeUnauthorized)).Inc()
		return errors.NewUnauthorizedError(fmt.Sprintf("%s %s", method, path))
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.APIRequestsFailed.WithLabelValues(resource, string(errors.ErrCodeDecodeFailed)).Inc()
		return errors.NewDecodeFailedError(err)
	}

	if !env.Success {
		c.logger.Debug("api rejected request", map[string]interface{}{
			"resource": resource,
			"path":     path,
			"message":  env.Message,
		})
		metrics.APIRequestsFailed.WithLabelValues(resource, string(errors.ErrCodeAPIRejected)).Inc()
		return errors.NewAPIRejectedError(env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			metrics.APIRequestsFailed.WithLabelValues(resource, string(errors.ErrCodeDecodeFailed)).Inc()
			return errors.NewDecodeFailedError(err)
		}
	}

	metrics.APIRequestsCompleted.WithLabelValues(resource).Inc()
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}, resource string) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, resource)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}, resource string) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, resource)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}, resource string) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, resource)
}

func (c *Client) delete(ctx context.Context, path string, resource string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, resource)
}
