// Package api holds the shared HTTP client for the explorer REST backend.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config describes how the client reaches the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outgoing requests per second; 0 disables the limit.
	RateLimit  int
	HTTPClient *http.Client
}

// Client performs single GET reads against the backend.
type Client struct {
	rest    *resty.Client
	metrics Metrics
	logger  *zap.Logger
}

// NewClient constructs a client with JSON headers, logging hooks, and an optional rate limit.
func NewClient(cfg Config, logger *zap.Logger, metrics Metrics) *Client {
	rest := resty.New()
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger = logger.Named("api_client").With(zap.String("base_url", cfg.BaseURL))

	limiter := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		limiter = ratelimit.New(cfg.RateLimit)
	}

	rest.SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		})

	rest.OnBeforeRequest(func(_ *resty.Client, _ *resty.Request) error {
		limiter.Take()
		return nil
	})
	rest.SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
		logger.Debug("API request", zap.String("method", req.Method), zap.String("url", req.URL.String()))
		return nil
	})
	rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.IsError() {
			logger.Error("API response error",
				zap.Int("status", resp.StatusCode()),
				zap.String("url", resp.Request.URL),
				zap.ByteString("body", resp.Body()),
			)
			return nil
		}
		logger.Debug("API response", zap.Int("status", resp.StatusCode()), zap.String("url", resp.Request.URL))
		return nil
	})
	rest.OnError(func(req *resty.Request, err error) {
		logger.Error("API request failed", zap.String("url", req.URL), zap.Error(err))
	})

	return &Client{
		rest:    rest,
		metrics: metrics,
		logger:  logger,
	}
}

// Get issues one GET for path with the given path parameters and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, operation, path string, pathParams map[string]string, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if !resp.IsSuccess() {
		return &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}
