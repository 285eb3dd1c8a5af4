// Package riskapi wraps the external risk-scoring backend. Every component
// that needs backend data goes through Client, which owns bearer-credential
// injection, JSON decoding into typed schemas, and the terminal-401 contract.
package riskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fraudlens/console/internal/config"
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/monitoring"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

// Client is the HTTP gateway to the risk backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
	metrics *monitoring.Metrics
}

// NewClient builds a gateway client from config.
func NewClient(cfg *config.UpstreamConfig, log logger.Logger, metrics *monitoring.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.TimeoutDuration()},
		log:     log,
		metrics: metrics,
	}
}

// upstreamError is the error body shape the backend uses: FastAPI "detail"
// for framework errors, "message" for business failures.
type upstreamError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (e upstreamError) text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// Do performs one backend call. A 401 maps to errors.ErrUnauthorized, which
// is terminal for the session: callers must not catch it for retry. Any other
// non-2xx maps to an upstream error carrying the backend detail when one was
// provided. On success the body is decoded into out when out is non-nil.
func (c *Client) Do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.ErrInternal.WithError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.ErrInternal.WithError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(metricPath(path), "transport_error", time.Since(start))
		c.log.Warn(ctx, "risk backend unreachable", logger.Fields{
			"method": method,
			"path":   metricPath(path),
		})
		return errors.ErrUpstream.WithError(err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstream(metricPath(path), strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.ErrUpstream.WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ue upstreamError
		_ = json.Unmarshal(raw, &ue)
		c.log.Warn(ctx, "risk backend returned error status", logger.Fields{
			"method": method,
			"path":   metricPath(path),
			"status": resp.StatusCode,
		})
		return errors.Upstream(ue.text()).WithError(fmt.Errorf("status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.ErrUpstream.WithError(fmt.Errorf("decode %s: %w", metricPath(path), err))
	}
	return nil
}

// Get issues an authorized GET.
func (c *Client) Get(ctx context.Context, token, path string, out interface{}) error {
	return c.Do(ctx, token, http.MethodGet, path, nil, out)
}

// Post issues an authorized POST with a JSON body.
func (c *Client) Post(ctx context.Context, token, path string, body, out interface{}) error {
	return c.Do(ctx, token, http.MethodPost, path, body, out)
}

// Patch issues an authorized PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, token, path string, body, out interface{}) error {
	return c.Do(ctx, token, http.MethodPatch, path, body, out)
}

// Login exchanges credentials at the backend's OAuth2 password endpoint. The
// form's username field carries the email. No bearer credential is attached.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.ErrInternal.WithError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream("/auth/login", "transport_error", time.Since(start))
		return nil, errors.ErrUpstream.WithError(err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstream("/auth/login", strconv.Itoa(resp.StatusCode), time.Since(start))

	var login models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return nil, errors.ErrUpstream.WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := login.Detail
		if detail == "" {
			detail = "Invalid credentials. Please try again."
		}
		return nil, errors.ErrInvalidInput.WithMessage(detail)
	}

	return &login, nil
}

// metricPath strips query strings and path-embedded IDs so metric labels stay
// low-cardinality.
func metricPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if strings.HasPrefix(path, "/api/admin/alerts/") {
		return "/api/admin/alerts/{id}"
	}
	return path
}
