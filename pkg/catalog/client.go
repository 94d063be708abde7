// Copyright (c) 2025, The resep Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/resepfinder/resep/pkg/defaults"
	"github.com/resepfinder/resep/pkg/errors"
	"github.com/resepfinder/resep/pkg/recipe"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-Id"

type endpoint string

const (
	endpointList   endpoint = "list.php"
	endpointSearch endpoint = "search.php"
	endpointFilter endpoint = "filter.php"
	endpointLookup endpoint = "lookup.php"
)

func (e endpoint) label() string {
	return strings.TrimSuffix(string(e), ".php")
}

var (
	// ErrNoResults is returned by SearchByName when the catalog answered
	// successfully but had no matching recipes.
	ErrNoResults = errors.New(errors.ErrCodeNotFound, "no matching recipes")

	// ErrUnavailable matches every failure to reach the catalog or to get a
	// 200 response from it.
	ErrUnavailable = errors.New(errors.ErrCodeUnavailable, "catalog unavailable")
)

// envelope is the shape of every catalog response body.
type envelope[T any] struct {
	Meals []T `json:"meals"`
}

type areaEntry struct {
	Area string `json:"strArea"`
}

// Client queries the recipe catalog. All methods are safe for sequential or
// concurrent use and issue exactly one logical GET per call.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	retries   int
	rateLimit float64
	maxBody   int64
	logger    *slog.Logger

	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the catalog API root, e.g. https://www.themealdb.com/api/json/v1/1.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the total per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

// WithRetries sets how many extra attempts follow a failed request.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithRateLimit caps outbound requests per second. Zero disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond >= 0 {
			c.rateLimit = perSecond
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Timeout options are
// not applied to a caller-supplied client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a catalog client with the given options.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:   defaults.CatalogBaseURL,
		userAgent: defaults.CatalogUserAgent,
		timeout:   defaults.HTTPClientTimeout,
		retries:   defaults.CatalogRetries,
		rateLimit: defaults.CatalogRateLimit,
		maxBody:   defaults.CatalogMaxBodyBytes,
		logger:    slog.Default(),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: newDefaultHTTPTransport(),
		}
	}

	if c.retries > 0 {
		rc := retryablehttp.NewClient()
		rc.HTTPClient = c.httpClient
		rc.RetryMax = c.retries
		rc.RetryWaitMin = defaults.HTTPRetryWaitMin
		rc.RetryWaitMax = defaults.HTTPRetryWaitMax
		rc.Logger = c.logger
		rc.ErrorHandler = passthroughResponse
		c.httpClient = rc.StandardClient()
	}

	if c.rateLimit > 0 {
		burst := int(c.rateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(c.rateLimit), burst)
	}

	return c
}

// passthroughResponse hands the last response back once retries are
// exhausted so that status handling stays in fetch.
func passthroughResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// newDefaultHTTPTransport clones the net/http default transport so that no
// timeouts beyond its own apply; only the TLS floor is raised.
func newDefaultHTTPTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	return t
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListAreas returns all area names known to the catalog, in catalog order.
// A non-200 response yields an empty list and no error; only a failure to
// reach the catalog is reported.
func (c *Client) ListAreas(ctx context.Context) ([]recipe.Area, error) {
	var env envelope[areaEntry]
	status, err := c.fetch(ctx, endpointList, "a", "list", &env)
	if err != nil {
		if status != 0 {
			return []recipe.Area{}, nil
		}
		return []recipe.Area{}, err
	}

	areas := make([]recipe.Area, 0, len(env.Meals))
	for _, e := range env.Meals {
		areas = append(areas, recipe.Area(e.Area))
	}
	return areas, nil
}

// SearchByName returns recipes whose name matches name. The three outcomes
// are told apart by the error: ErrUnavailable (non-200 or unreachable),
// ErrNoResults (no matches), or nil with at least one summary.
func (c *Client) SearchByName(ctx context.Context, name string) ([]recipe.Summary, error) {
	var env envelope[recipe.Summary]
	if _, err := c.fetch(ctx, endpointSearch, "s", name, &env); err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 {
		return nil, errors.NewWithContext(ErrNoResults.Code, ErrNoResults.Message,
			map[string]any{"name": name})
	}
	return env.Meals, nil
}

// FilterByArea returns the recipes of one area. Missing data and non-200
// responses both yield an empty list.
func (c *Client) FilterByArea(ctx context.Context, area recipe.Area) ([]recipe.Summary, error) {
	var env envelope[recipe.Summary]
	status, err := c.fetch(ctx, endpointFilter, "a", string(area), &env)
	if err != nil {
		if status != 0 {
			return []recipe.Summary{}, nil
		}
		return []recipe.Summary{}, err
	}
	if env.Meals == nil {
		return []recipe.Summary{}, nil
	}
	return env.Meals, nil
}

// GetDetail returns the full record for id, or nil when the catalog has no
// such recipe or answered with a non-200 status.
func (c *Client) GetDetail(ctx context.Context, id string) (*recipe.Detail, error) {
	var env envelope[*recipe.Detail]
	status, err := c.fetch(ctx, endpointLookup, "i", id, &env)
	if err != nil {
		if status != 0 {
			return nil, nil
		}
		return nil, err
	}
	if len(env.Meals) == 0 || env.Meals[0] == nil {
		return nil, nil
	}
	return env.Meals[0], nil
}

// fetch performs one GET and decodes a 200 body into out. The returned status
// is zero when no response was received. Any error matches ErrUnavailable
// unless the body could not be decoded.
func (c *Client) fetch(ctx context.Context, ep endpoint, key, value string, out any) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, ep, url.Values{key: []string{value}}.Encode())
	reqID := uuid.NewString()
	errCtx := map[string]any{
		"endpoint":  ep.label(),
		"url":       u,
		"requestID": reqID,
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, errors.WrapWithContext(errors.ErrCodeCanceled, "rate limiter wait aborted", err, errCtx)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to create catalog request", err, errCtx)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("catalog request", "endpoint", ep.label(), "url", u, "requestID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	catalogRequestDuration.WithLabelValues(ep.label()).Observe(elapsed.Seconds())

	if err != nil {
		catalogRequestsTotal.WithLabelValues(ep.label(), statusError).Inc()
		if ctx.Err() != nil {
			return 0, errors.WrapWithContext(errors.ErrCodeCanceled, "catalog request canceled", err, errCtx)
		}
		c.logger.Debug("catalog request failed", "endpoint", ep.label(), "requestID", reqID, "error", err)
		return 0, errors.WrapWithContext(ErrUnavailable.Code, ErrUnavailable.Message, err, errCtx)
	}
	defer resp.Body.Close()

	catalogRequestsTotal.WithLabelValues(ep.label(), strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug("catalog response",
		"endpoint", ep.label(),
		"requestID", reqID,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds())

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused; the body is never decoded.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))
		errCtx["status"] = resp.StatusCode
		c.logger.Debug("catalog returned non-200 status",
			"endpoint", ep.label(), "requestID", reqID, "status", resp.StatusCode)
		return resp.StatusCode, errors.WrapWithContext(ErrUnavailable.Code, ErrUnavailable.Message,
			fmt.Errorf("unexpected status %s", resp.Status), errCtx)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, c.maxBody)).Decode(out); err != nil {
		return resp.StatusCode, errors.WrapWithContext(errors.ErrCodeInternal, "failed to decode catalog response", err, errCtx)
	}
	return resp.StatusCode, nil
}
