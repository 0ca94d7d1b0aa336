// Package api is the single boundary to the marketplace backend. All
// wire-format knowledge (endpoint paths, field-name remapping, error
// body shapes) lives here and nowhere else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	commonerrors "jobboard-client/internal/common/errors"
	commonhttp "jobboard-client/internal/common/http"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/common/metrics"
	"jobboard-client/internal/common/observability"
)

// Client is the typed HTTP client for the backend. One instance is
// shared by all workflows so the credential cookie set at login rides
// on every later request.
type Client struct {
	baseURL string
	http    *commonhttp.Client
	logger  logger.Logger
	obs     *observability.Observability
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger, obs *observability.Observability) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    commonhttp.NewClient(timeout),
		logger:  log,
		obs:     obs,
	}
}

// ResetSession drops the credential cookie. Called on logout.
func (c *Client) ResetSession() {
	c.http.ClearCookies()
}

// errorBody matches the backend's error envelope. The backend is not
// consistent about key casing, so both variants are decoded.
type errorBody struct {
	Error    string `json:"error"`
	ErrorAlt string `json:"Error"`
	Message  string `json:"message"`
}

func (e errorBody) text() string {
	if e.Error != "" {
		return e.Error
	}
	if e.ErrorAlt != "" {
		return e.ErrorAlt
	}
	return e.Message
}

// doJSON issues one request and decodes a JSON response into out (out
// may be nil when the body is irrelevant). Every error returned is a
// *commonerrors.ClientError.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return commonerrors.NewValidationError(fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return commonerrors.NewValidationError(fmt.Sprintf("build request: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, operation, out)
}

// send executes a prepared request, records metrics and converts
// failures per the error taxonomy.
func (c *Client) send(req *http.Request, operation string, out interface{}) error {
	start := time.Now()
	metrics.APIRequestsTotal.WithLabelValues(operation).Inc()

	resp, err := c.http.Do(req)
	duration := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if c.obs != nil {
		c.obs.RecordRequestDuration(req.Context(), operation, duration)
	}

	if err != nil {
		c.recordFailure(req.Context(), operation, commonerrors.ErrCodeTransportFailed)
		c.logger.Warn("backend request failed", map[string]interface{}{
			"operation": operation,
			"error":     err.Error(),
		})
		return commonerrors.NewTransportError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)

		c.logger.Warn("backend returned error status", map[string]interface{}{
			"operation": operation,
			"status":    resp.StatusCode,
			"message":   eb.text(),
		})

		if resp.StatusCode == http.StatusUnauthorized {
			c.recordFailure(req.Context(), operation, commonerrors.ErrCodeAuthenticationFailed)
			return commonerrors.NewAuthenticationError(eb.text())
		}
		c.recordFailure(req.Context(), operation, commonerrors.ErrCodeAPIStatus)
		return commonerrors.NewAPIStatusError(resp.StatusCode, eb.text())
	}

	if c.obs != nil {
		c.obs.RecordRequest(req.Context(), operation, "ok")
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.recordFailure(req.Context(), operation, commonerrors.ErrCodeMalformedResponse)
		return commonerrors.NewMalformedResponseError(err.Error())
	}
	return nil
}

func (c *Client) recordFailure(ctx context.Context, operation string, code commonerrors.ErrorCode) {
	metrics.APIRequestsFailed.WithLabelValues(operation, string(code)).Inc()
	if c.obs != nil {
		c.obs.RecordRequest(ctx, operation, "error")
	}
}
