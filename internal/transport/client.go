// Package transport is the single HTTP adapter every API module goes
// through: it applies the base URL and fixed timeout, injects the persisted
// bearer token, and clears that token whenever the server answers 401.
// No retries, no backoff, no circuit breaking.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
	"github.com/citasmovil/citasmovil/pkg/logger"
	"github.com/citasmovil/citasmovil/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

// TokenSource reads and clears the persisted bearer token. The session
// store writes tokens; the adapter only reads them and clears on 401.
type TokenSource interface {
	Token() (string, bool)
	ClearToken() error
}

// Config holds adapter configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit throttles outgoing requests client-side when > 0.
	// Off by default; the source app sent requests unthrottled.
	RateLimit float64
	RateBurst int
}

// Client is the configured HTTP adapter.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logger.Logger
	metrics *metrics.Metrics
	limiter *rate.Limiter
}

// New creates the adapter. tokens and log are required; m may be nil when
// metrics are not wired (tests).
func New(cfg Config, tokens TokenSource, log *logger.Logger, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
		metrics: m,
		limiter: limiter,
	}
}

// Get issues a GET request. params may be nil.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*model.Envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil, params)
}

// Post issues a POST request with a JSON body. body may be nil.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*model.Envelope, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*model.Envelope, error) {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*model.Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*model.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetRaw issues a GET request and returns the undecoded body. Used by the
// report export endpoint, which responds with a file instead of JSON.
func (c *Client) GetRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NewConnection(err)
	}
	if resp.StatusCode >= 400 {
		var env model.Envelope
		_ = json.Unmarshal(data, &env)
		return nil, apierr.NewServer(resp.StatusCode, env.Message)
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, params url.Values) (*model.Envelope, error) {
	resp, err := c.send(ctx, method, path, body, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NewConnection(err)
	}

	var env model.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, apierr.NewServer(resp.StatusCode, "")
		}
		return nil, apierr.NewConnection(fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode >= 400 {
		return &env, apierr.NewServer(resp.StatusCode, env.Message)
	}
	if !env.Success {
		return &env, apierr.NewServer(resp.StatusCode, env.Message)
	}
	return &env, nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, params url.Values) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apierr.NewConnection(err)
		}
	}

	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apierr.NewConnection(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, apierr.NewConnection(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.log.Error(err, "request failed", "method", method, "path", path)
		c.observe(method, path, 0, elapsed)
		return nil, apierr.NewConnection(err)
	}

	c.log.Debug("request completed",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", elapsed.String())
	c.observe(method, path, resp.StatusCode, elapsed)

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.ClearToken(); err != nil {
			c.log.Error(err, "failed to clear token after 401")
		}
		if c.metrics != nil {
			c.metrics.TokenClears.Inc()
		}
	}
	return resp, nil
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.metrics.RequestLatency.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
