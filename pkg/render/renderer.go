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

package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/resepfinder/resep/pkg/defaults"
	"github.com/resepfinder/resep/pkg/header"
	"github.com/resepfinder/resep/pkg/i18n"
	"github.com/resepfinder/resep/pkg/recipe"
	"github.com/resepfinder/resep/pkg/serializer"
)

// Format selects how each recipe is written to the sink.
type Format string

const (
	// FormatTable renders a two-column table per recipe.
	FormatTable Format = "table"
	// FormatJSON writes each recipe card as indented JSON.
	FormatJSON Format = Format(serializer.FormatJSON)
	// FormatYAML writes each recipe card as a YAML document.
	FormatYAML Format = Format(serializer.FormatYAML)
)

// SupportedFormats returns the accepted output format names.
func SupportedFormats() []string {
	return append([]string{string(FormatTable)}, serializer.SupportedFormats()...)
}

// ParseFormat validates s. An empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: %s)",
			s, strings.Join(SupportedFormats(), ", "))
	}
}

// DetailFetcher looks up a full recipe by id. A nil detail with a nil error
// means the catalog has no such recipe.
type DetailFetcher interface {
	GetDetail(ctx context.Context, id string) (*recipe.Detail, error)
}

// Renderer fetches and prints batches of recipes.
type Renderer struct {
	fetcher     DetailFetcher
	sink        Sink
	printer     *i18n.Printer
	format      Format
	concurrency int
	newProgress ProgressFactory
	logger      *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConcurrency sets how many details are fetched at once. Values below 2
// keep fetching sequential; values are capped at defaults.MaxRenderConcurrency.
func WithConcurrency(n int) Option {
	return func(r *Renderer) {
		switch {
		case n < 1:
			r.concurrency = 1
		case n > defaults.MaxRenderConcurrency:
			r.concurrency = defaults.MaxRenderConcurrency
		default:
			r.concurrency = n
		}
	}
}

// WithFormat sets the output format. Unknown formats fall back to FormatTable.
func WithFormat(f Format) Option {
	return func(r *Renderer) {
		if parsed, err := ParseFormat(string(f)); err == nil {
			r.format = parsed
		}
	}
}

// WithPrinter sets the message printer used for labels and defaults.
func WithPrinter(p *i18n.Printer) Option {
	return func(r *Renderer) {
		if p != nil {
			r.printer = p
		}
	}
}

// WithProgressFactory replaces the progress bar.
func WithProgressFactory(f ProgressFactory) Option {
	return func(r *Renderer) {
		if f != nil {
			r.newProgress = f
		}
	}
}

// WithLogger sets the logger for per-item failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a Renderer that fetches details from fetcher and prints to sink.
func New(fetcher DetailFetcher, sink Sink, options ...Option) *Renderer {
	r := &Renderer{
		fetcher:     fetcher,
		sink:        sink,
		printer:     i18n.Default(),
		format:      FormatTable,
		concurrency: defaults.RenderConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.newProgress == nil {
		label := r.printer.Text(i18n.Progress)
		r.newProgress = func(total int) Progress {
			// keep json and yaml output parseable
			if r.format != FormatTable {
				return NoProgress{}
			}
			return NewBar(sink, label, total)
		}
	}
	return r
}

// document is the exported form of one recipe: a header followed by the
// card fields at the same level.
type document struct {
	header.Header `yaml:",inline"`
	recipe.Card   `yaml:",inline"`
}

// fetched is the outcome of one detail lookup.
type fetched struct {
	detail *recipe.Detail
	err    error
}

// RenderBatch resolves each summary, fetches its detail and prints it, in
// input order. Summaries without an id, missing recipes and failed lookups
// are skipped. Progress advances once per summary. Returns the number of
// recipes printed.
func (r *Renderer) RenderBatch(ctx context.Context, summaries []recipe.Summary) int {
	if len(summaries) == 0 {
		return 0
	}
	progress := r.newProgress(len(summaries))

	if r.concurrency <= 1 {
		rendered := 0
		for i, s := range summaries {
			if r.emit(ctx, i, s, r.fetch(ctx, s)) {
				rendered++
			}
			progress.Advance()
		}
		return rendered
	}

	results := make([]fetched, len(summaries))
	done := make([]chan struct{}, len(summaries))
	for i := range done {
		done[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	// g.Go blocks once the limit is reached, so launching happens off the
	// loop goroutine while results are consumed in order below.
	go func() {
		for i, s := range summaries {
			if _, ok := s.ID(); !ok {
				close(done[i])
				continue
			}
			g.Go(func() error {
				defer close(done[i])
				results[i] = r.fetch(gctx, s)
				return nil
			})
		}
	}()

	rendered := 0
	for i, s := range summaries {
		<-done[i]
		if r.emit(ctx, i, s, results[i]) {
			rendered++
		}
		progress.Advance()
	}
	_ = g.Wait()
	return rendered
}

func (r *Renderer) fetch(ctx context.Context, s recipe.Summary) fetched {
	id, ok := s.ID()
	if !ok {
		return fetched{}
	}
	if err := ctx.Err(); err != nil {
		return fetched{err: err}
	}
	d, err := r.fetcher.GetDetail(ctx, id)
	return fetched{detail: d, err: err}
}

// emit prints one fetched recipe and reports whether anything was printed.
func (r *Renderer) emit(ctx context.Context, index int, s recipe.Summary, f fetched) bool {
	if _, ok := s.ID(); !ok {
		r.logger.Debug("skipping summary without id", "index", index, "kind", s.Kind().String())
		return false
	}
	if f.err != nil {
		r.logger.Warn("failed to fetch recipe detail", "index", index, "error", f.err)
		return false
	}
	if f.detail == nil {
		r.logger.Debug("recipe detail not found", "index", index)
		return false
	}

	card := recipe.NewCard(f.detail)
	if r.format == FormatTable {
		printBlock(r.sink, r.Table(card))
	} else {
		doc := document{
			Header: header.New(header.KindRecipe,
				header.WithMetadata("language", r.printer.Language()),
				header.WithTimestamp(time.Now())),
			Card: card,
		}
		var buf bytes.Buffer
		if err := serializer.NewWriter(serializer.Format(r.format), &buf).Serialize(ctx, doc); err != nil {
			r.logger.Error("failed to serialize recipe", "id", card.ID, "error", err)
			return false
		}
		// one YAML stream, one document per recipe
		if r.format == FormatYAML {
			r.sink.Print("---")
		}
		printBlock(r.sink, buf.String())
	}
	r.sink.Print("")
	return true
}

// Table returns the table layout of card.
func (r *Renderer) Table(card recipe.Card) string {
	title := card.Name
	if strings.TrimSpace(title) == "" {
		title = r.printer.Text(i18n.Untitled)
	}

	return table{
		title: title,
		header: row{
			label:  r.printer.Text(i18n.ColumnInfo),
			detail: r.printer.Text(i18n.ColumnDetail),
		},
		rows: []row{
			{label: r.printer.Text(i18n.RowCategory), detail: r.orDefault(card.Category)},
			{label: r.printer.Text(i18n.RowArea), detail: r.orDefault(card.Area)},
			{label: r.printer.Text(i18n.RowIngredients), detail: r.orDefault(strings.Join(card.Ingredients, "\n"))},
			{label: r.printer.Text(i18n.RowInstructions), detail: r.orDefault(card.Instructions)},
			{label: r.printer.Text(i18n.RowVideo), detail: r.orDefault(card.Video)},
		},
	}.String()
}

func (r *Renderer) orDefault(s string) string {
	if s == "" {
		return r.printer.Text(i18n.NotAvailable)
	}
	return s
}
