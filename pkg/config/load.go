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
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/resepfinder/resep/pkg/errors"
	"github.com/resepfinder/resep/pkg/logging"
	"github.com/resepfinder/resep/pkg/serializer"
)

// Environment variables read by Load. LOG_LEVEL is honored when
// RESEP_LOG_LEVEL is unset.
const (
	EnvBaseURL     = "RESEP_BASE_URL"
	EnvTimeout     = "RESEP_TIMEOUT"
	EnvRetries     = "RESEP_RETRIES"
	EnvRateLimit   = "RESEP_RATE_LIMIT"
	EnvConcurrency = "RESEP_CONCURRENCY"
	EnvFormat      = "RESEP_FORMAT"
	EnvLanguage    = "RESEP_LANG"
	EnvLogLevel    = "RESEP_LOG_LEVEL"
	EnvConfigFile  = "RESEP_CONFIG"
	EnvMetricsFile = "RESEP_METRICS_FILE"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// File is the on-disk configuration format. Every field is optional.
//
//	baseURL: https://www.themealdb.com/api/json/v1/1
//	timeout: 10s
//	retries: 2
//	rateLimit: 5
//	concurrency: 4
//	format: table
//	lang: id
//	logLevel: warn
//	metricsFile: resep.prom
type File struct {
	BaseURL     string   `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	Timeout     string   `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Retries     *int     `json:"retries,omitempty" yaml:"retries,omitempty"`
	RateLimit   *float64 `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Concurrency *int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Lang        string   `json:"lang,omitempty" yaml:"lang,omitempty"`
	LogLevel    string   `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	MetricsFile string   `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`
}

// Options converts the set fields of f into options.
func (f *File) Options() ([]Option, error) {
	if f == nil {
		return nil, nil
	}
	var opts []Option
	if f.BaseURL != "" {
		opts = append(opts, WithBaseURL(f.BaseURL))
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return nil, fmt.Errorf("timeout: %w", err)
		}
		opts = append(opts, WithTimeout(d))
	}
	if f.Retries != nil {
		opts = append(opts, WithRetries(*f.Retries))
	}
	if f.RateLimit != nil {
		opts = append(opts, WithRateLimit(*f.RateLimit))
	}
	if f.Concurrency != nil {
		opts = append(opts, WithConcurrency(*f.Concurrency))
	}
	if f.Format != "" {
		opts = append(opts, WithFormat(f.Format))
	}
	if f.Lang != "" {
		opts = append(opts, WithLanguage(f.Lang))
	}
	if f.LogLevel != "" {
		opts = append(opts, WithLogLevel(f.LogLevel))
	}
	if f.MetricsFile != "" {
		opts = append(opts, WithMetricsFile(f.MetricsFile))
	}
	return opts, nil
}

// Sources names where Load reads settings from.
type Sources struct {
	// File is an optional YAML or JSON config file. Empty skips it.
	File string
	// EnvFile is an optional dotenv file; a missing file is not an error.
	EnvFile string
	// LookupEnv reads process environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load resolves a Config with increasing precedence: defaults, the config
// file, the dotenv file, the process environment, then overrides (flags).
// The result is validated.
func Load(src Sources, overrides ...Option) (*Config, error) {
	var opts []Option

	if src.File != "" {
		file, err := serializer.FromFile[File](src.File)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to read config file", err, map[string]any{"path": src.File})
		}
		fileOpts, err := file.Options()
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid config file", err, map[string]any{"path": src.File})
		}
		opts = append(opts, fileOpts...)
	}

	lookup, err := envLookup(src)
	if err != nil {
		return nil, err
	}
	envOpts, err := envOptions(lookup)
	if err != nil {
		return nil, err
	}
	opts = append(opts, envOpts...)
	opts = append(opts, overrides...)

	cfg := New(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envLookup combines the process environment with the dotenv file. Process
// variables win, matching godotenv.Load.
func envLookup(src Sources) (func(string) (string, bool), error) {
	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if src.EnvFile == "" {
		return lookup, nil
	}

	dotenv, err := godotenv.Read(src.EnvFile)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to read env file", err, map[string]any{"path": src.EnvFile})
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func envOptions(lookup func(string) (string, bool)) ([]Option, error) {
	var opts []Option
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	invalid := func(key, value string, err error) error {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid value for %s", key), err,
			map[string]any{"variable": key, "value": value})
	}

	if v, ok := get(EnvBaseURL); ok {
		opts = append(opts, WithBaseURL(v))
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, invalid(EnvTimeout, v, err)
		}
		opts = append(opts, WithTimeout(d))
	}
	if v, ok := get(EnvRetries); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, invalid(EnvRetries, v, err)
		}
		opts = append(opts, WithRetries(n))
	}
	if v, ok := get(EnvRateLimit); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, invalid(EnvRateLimit, v, err)
		}
		opts = append(opts, WithRateLimit(r))
	}
	if v, ok := get(EnvConcurrency); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, invalid(EnvConcurrency, v, err)
		}
		opts = append(opts, WithConcurrency(n))
	}
	if v, ok := get(EnvFormat); ok {
		opts = append(opts, WithFormat(v))
	}
	if v, ok := get(EnvLanguage); ok {
		opts = append(opts, WithLanguage(v))
	}
	if v, ok := get(EnvLogLevel); ok {
		opts = append(opts, WithLogLevel(v))
	} else if v, ok := get(logging.EnvVarLogLevel); ok {
		opts = append(opts, WithLogLevel(v))
	}
	if v, ok := get(EnvMetricsFile); ok {
		opts = append(opts, WithMetricsFile(v))
	}
	return opts, nil
}
