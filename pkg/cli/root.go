/*
Copyright © 2025 The resep Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/resepfinder/resep/pkg/catalog"
	"github.com/resepfinder/resep/pkg/config"
	"github.com/resepfinder/resep/pkg/defaults"
	"github.com/resepfinder/resep/pkg/i18n"
	"github.com/resepfinder/resep/pkg/logging"
	"github.com/resepfinder/resep/pkg/menu"
	"github.com/resepfinder/resep/pkg/prompt"
	"github.com/resepfinder/resep/pkg/render"
	buildversion "github.com/resepfinder/resep/pkg/version"
)

const (
	name           = "resep"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with os.Args and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Search TheMealDB recipes by dish name or area",
		Version: buildInfo().String(),
		Description: `Interactive recipe finder. Choose a search method from the menu:

  1. search by dish name
  2. search by area/country
  3. exit

Matching recipes are printed as tables with category, area, ingredients,
instructions and video link. Every flag can also be set through a RESEP_*
environment variable, a .env file or a YAML config file.`,
		Flags:  rootFlags(),
		Action: runInteractive,
	}
}

func runInteractive(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.Sources{
		File:    cmd.String(flagConfig),
		EnvFile: cmd.String(flagEnvFile),
	}, overridesFromCmd(cmd)...)
	if err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel())
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"baseURL", cfg.BaseURL(),
		"concurrency", cfg.Concurrency(),
		"format", string(cfg.Format()),
		"lang", cfg.Language())

	root := cmd.Root()
	runErr := newSession(cfg, root.Reader, root.Writer, root.ErrWriter).Run(ctx)

	if path := cfg.MetricsFile(); path != "" {
		if err := catalog.WriteMetrics(path); err != nil {
			return stderrors.Join(runErr, err)
		}
		slog.Debug("wrote metrics", "path", path)
	}
	return runErr
}

// newSession wires the catalog client, renderer and prompt into a menu loop.
// Recipes go to out. For json and yaml the banner, menu and prompts go to
// errOut so that out carries only documents.
func newSession(cfg *config.Config, in io.Reader, out, errOut io.Writer) *menu.Loop {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	printer, err := i18n.New(cfg.Language())
	if err != nil {
		// Validate already rejected unsupported languages
		printer = i18n.Default()
	}
	logger := slog.Default()

	client := catalog.NewClient(
		catalog.WithBaseURL(cfg.BaseURL()),
		catalog.WithTimeout(cfg.Timeout()),
		catalog.WithRetries(cfg.Retries()),
		catalog.WithRateLimit(cfg.RateLimit()),
		catalog.WithUserAgent(userAgent()),
		catalog.WithLogger(logger),
	)

	sink := render.NewWriterSink(out)
	chatter, chatterSink := out, sink
	if cfg.Format() != render.FormatTable {
		chatter, chatterSink = errOut, render.NewWriterSink(errOut)
	}

	renderer := render.New(client, sink,
		render.WithConcurrency(cfg.Concurrency()),
		render.WithFormat(cfg.Format()),
		render.WithPrinter(printer),
		render.WithLogger(logger),
	)
	asker := prompt.New(in, chatter, prompt.WithPrinter(printer))

	return menu.New(client, renderer, asker, chatterSink,
		menu.WithPrinter(printer),
		menu.WithLogger(logger),
	)
}

func buildInfo() buildversion.Info {
	return buildversion.Info{Version: version, Commit: commit, Date: date}
}

// userAgent identifies release builds in catalog requests.
func userAgent() string {
	return buildInfo().UserAgent(name, defaults.CatalogUserAgent)
}
