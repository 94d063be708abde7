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

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/resepfinder/resep/pkg/defaults"
	"github.com/resepfinder/resep/pkg/errors"
	"github.com/resepfinder/resep/pkg/i18n"
	"github.com/resepfinder/resep/pkg/render"
)

// Config holds the resolved settings of one run. It is immutable once built;
// use the getters to read it.
type Config struct {
	baseURL     string
	timeout     time.Duration
	retries     int
	rateLimit   float64
	concurrency int
	format      render.Format
	language    string
	logLevel    string
	metricsFile string
}

// Option overrides one setting.
type Option func(*Config)

// WithBaseURL sets the catalog API root.
func WithBaseURL(u string) Option {
	return func(c *Config) { c.baseURL = strings.TrimRight(strings.TrimSpace(u), "/") }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.timeout = d }
}

// WithRetries sets the number of extra attempts per catalog request.
func WithRetries(n int) Option {
	return func(c *Config) { c.retries = n }
}

// WithRateLimit sets the catalog request rate in requests per second.
func WithRateLimit(perSecond float64) Option {
	return func(c *Config) { c.rateLimit = perSecond }
}

// WithConcurrency sets how many recipe details are fetched at once.
func WithConcurrency(n int) Option {
	return func(c *Config) { c.concurrency = n }
}

// WithFormat sets the recipe output format.
func WithFormat(f string) Option {
	return func(c *Config) { c.format = render.Format(strings.ToLower(strings.TrimSpace(f))) }
}

// WithLanguage sets the message language.
func WithLanguage(lang string) Option {
	return func(c *Config) { c.language = strings.TrimSpace(lang) }
}

// WithLogLevel sets the log level name.
func WithLogLevel(level string) Option {
	return func(c *Config) { c.logLevel = strings.ToLower(strings.TrimSpace(level)) }
}

// WithMetricsFile sets the path the catalog metrics are written to on exit.
func WithMetricsFile(path string) Option {
	return func(c *Config) { c.metricsFile = strings.TrimSpace(path) }
}

// New returns a Config built from defaults and the given options.
func New(options ...Option) *Config {
	c := &Config{
		baseURL:     defaults.CatalogBaseURL,
		timeout:     defaults.HTTPClientTimeout,
		retries:     defaults.CatalogRetries,
		rateLimit:   defaults.CatalogRateLimit,
		concurrency: defaults.RenderConcurrency,
		format:      render.FormatTable,
		language:    defaults.CLILanguage,
		logLevel:    defaults.CLILogLevel,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// BaseURL returns the catalog API root without a trailing slash.
func (c *Config) BaseURL() string { return c.baseURL }

// Timeout returns the per-request HTTP timeout. Zero means no limit.
func (c *Config) Timeout() time.Duration { return c.timeout }

// Retries returns the number of extra attempts per catalog request.
func (c *Config) Retries() int { return c.retries }

// RateLimit returns the catalog request rate; zero means unlimited.
func (c *Config) RateLimit() float64 { return c.rateLimit }

// Concurrency returns how many details are fetched at once.
func (c *Config) Concurrency() int { return c.concurrency }

// Format returns the recipe output format.
func (c *Config) Format() render.Format { return c.format }

// Language returns the message language code.
func (c *Config) Language() string { return c.language }

// LogLevel returns the log level name.
func (c *Config) LogLevel() string { return c.logLevel }

// MetricsFile returns the metrics output path; empty disables the dump.
func (c *Config) MetricsFile() string { return c.metricsFile }

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate reports every invalid setting in a single INVALID_REQUEST error.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.baseURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		problems = append(problems, fmt.Sprintf("base URL %q must be an absolute http(s) URL", c.baseURL))
	}
	if c.timeout < 0 {
		problems = append(problems, fmt.Sprintf("timeout %s must not be negative", c.timeout))
	}
	if c.retries < 0 {
		problems = append(problems, fmt.Sprintf("retries %d must not be negative", c.retries))
	}
	if c.rateLimit < 0 {
		problems = append(problems, fmt.Sprintf("rate limit %g must not be negative", c.rateLimit))
	}
	if c.concurrency < 1 || c.concurrency > defaults.MaxRenderConcurrency {
		problems = append(problems, fmt.Sprintf("concurrency %d must be between 1 and %d",
			c.concurrency, defaults.MaxRenderConcurrency))
	}
	if _, err := render.ParseFormat(string(c.format)); err != nil {
		problems = append(problems, err.Error())
	}
	if !i18n.IsSupported(c.language) {
		problems = append(problems, fmt.Sprintf("language %q is not supported (supported: %s)",
			c.language, strings.Join(i18n.Supported(), ", ")))
	}
	if !slices.Contains(logLevels, c.logLevel) {
		problems = append(problems, fmt.Sprintf("log level %q is not one of %s",
			c.logLevel, strings.Join(logLevels, ", ")))
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		"invalid configuration: "+strings.Join(problems, "; "),
		map[string]any{"problems": problems})
}
