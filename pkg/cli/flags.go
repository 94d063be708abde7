/*
Copyright © 2025 The resep Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/resepfinder/resep/pkg/config"
	"github.com/resepfinder/resep/pkg/defaults"
	"github.com/resepfinder/resep/pkg/i18n"
	"github.com/resepfinder/resep/pkg/render"
)

const (
	flagConfig      = "config"
	flagEnvFile     = "env-file"
	flagBaseURL     = "base-url"
	flagTimeout     = "timeout"
	flagRetries     = "retries"
	flagRateLimit   = "rate-limit"
	flagConcurrency = "concurrency"
	flagFormat      = "format"
	flagLang        = "lang"
	flagLogLevel    = "log-level"
	flagMetricsFile = "metrics-file"
)

// rootFlags returns the flags of the root command. Defaults shown in help
// match config.New; values only override the config file and environment
// when the flag is given explicitly.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to a YAML or JSON config file",
			Sources: cli.EnvVars(config.EnvConfigFile),
		},
		&cli.StringFlag{
			Name:  flagEnvFile,
			Value: config.DefaultEnvFile,
			Usage: "Dotenv file with RESEP_* variables; ignored when missing",
		},
		&cli.StringFlag{
			Name:  flagBaseURL,
			Value: defaults.CatalogBaseURL,
			Usage: "Recipe catalog API root",
		},
		&cli.DurationFlag{
			Name:  flagTimeout,
			Value: defaults.HTTPClientTimeout,
			Usage: "Timeout for each catalog request (0 for no limit)",
		},
		&cli.IntFlag{
			Name:  flagRetries,
			Value: defaults.CatalogRetries,
			Usage: "Extra attempts for failed catalog requests",
		},
		&cli.FloatFlag{
			Name:  flagRateLimit,
			Value: defaults.CatalogRateLimit,
			Usage: "Maximum catalog requests per second (0 for unlimited)",
		},
		&cli.IntFlag{
			Name:  flagConcurrency,
			Value: defaults.RenderConcurrency,
			Usage: fmt.Sprintf("Recipe details fetched at once (1-%d)", defaults.MaxRenderConcurrency),
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"t"},
			Value:   string(render.FormatTable),
			Usage:   fmt.Sprintf("Recipe output format (supported values: %s)", strings.Join(render.SupportedFormats(), ", ")),
		},
		&cli.StringFlag{
			Name:  flagLang,
			Value: defaults.CLILanguage,
			Usage: fmt.Sprintf("Message language (supported values: %s)", strings.Join(i18n.Supported(), ", ")),
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Value: defaults.CLILogLevel,
			Usage: "Log level written to stderr (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  flagMetricsFile,
			Usage: "Write catalog request metrics in Prometheus text format to this file on exit",
		},
	}
}

// overridesFromCmd returns config options for the flags set on the command line.
func overridesFromCmd(cmd *cli.Command) []config.Option {
	var opts []config.Option
	if cmd.IsSet(flagBaseURL) {
		opts = append(opts, config.WithBaseURL(cmd.String(flagBaseURL)))
	}
	if cmd.IsSet(flagTimeout) {
		opts = append(opts, config.WithTimeout(cmd.Duration(flagTimeout)))
	}
	if cmd.IsSet(flagRetries) {
		opts = append(opts, config.WithRetries(cmd.Int(flagRetries)))
	}
	if cmd.IsSet(flagRateLimit) {
		opts = append(opts, config.WithRateLimit(cmd.Float(flagRateLimit)))
	}
	if cmd.IsSet(flagConcurrency) {
		opts = append(opts, config.WithConcurrency(cmd.Int(flagConcurrency)))
	}
	if cmd.IsSet(flagFormat) {
		opts = append(opts, config.WithFormat(cmd.String(flagFormat)))
	}
	if cmd.IsSet(flagLang) {
		opts = append(opts, config.WithLanguage(cmd.String(flagLang)))
	}
	if cmd.IsSet(flagLogLevel) {
		opts = append(opts, config.WithLogLevel(cmd.String(flagLogLevel)))
	}
	if cmd.IsSet(flagMetricsFile) {
		opts = append(opts, config.WithMetricsFile(cmd.String(flagMetricsFile)))
	}
	return opts
}
