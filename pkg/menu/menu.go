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

package menu

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/resepfinder/resep/pkg/catalog"
	"github.com/resepfinder/resep/pkg/i18n"
	"github.com/resepfinder/resep/pkg/recipe"
	"github.com/resepfinder/resep/pkg/render"
)

// State is a position in the interactive loop.
type State int

const (
	// MainMenu shows the search methods.
	MainMenu State = iota
	// SearchByName asks for a dish name and prints matches.
	SearchByName
	// SearchByArea lists areas and prints the recipes of the chosen one.
	SearchByArea
	// Exit ends the loop.
	Exit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case MainMenu:
		return "main-menu"
	case SearchByName:
		return "search-by-name"
	case SearchByArea:
		return "search-by-area"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

const (
	choiceByName = "1"
	choiceByArea = "2"
	choiceExit   = "3"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("2")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(0, 2)

// Catalog is the part of the catalog client the loop queries.
type Catalog interface {
	ListAreas(ctx context.Context) ([]recipe.Area, error)
	SearchByName(ctx context.Context, name string) ([]recipe.Summary, error)
	FilterByArea(ctx context.Context, area recipe.Area) ([]recipe.Summary, error)
}

// Renderer prints a batch of recipes.
type Renderer interface {
	RenderBatch(ctx context.Context, summaries []recipe.Summary) int
}

// Asker reads user answers.
type Asker interface {
	Ask(ctx context.Context, label string, choices []string) (string, error)
	AskText(ctx context.Context, label string) (string, error)
}

// Loop is the interactive recipe search.
type Loop struct {
	catalog  Catalog
	renderer Renderer
	asker    Asker
	sink     render.Sink
	printer  *i18n.Printer
	logger   *slog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithPrinter sets the message language.
func WithPrinter(p *i18n.Printer) Option {
	return func(l *Loop) {
		if p != nil {
			l.printer = p
		}
	}
}

// WithLogger sets the logger for catalog failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New returns a Loop that queries c, prints through sink and renders
// matches with r.
func New(c Catalog, r Renderer, asker Asker, sink render.Sink, options ...Option) *Loop {
	l := &Loop{
		catalog:  c,
		renderer: r,
		asker:    asker,
		sink:     sink,
		printer:  i18n.Default(),
		logger:   slog.Default(),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Run prints the banner and runs the loop until the user exits, input ends
// or ctx is canceled; all three return nil. Only input failures other than
// end of input are returned.
func (l *Loop) Run(ctx context.Context) error {
	l.banner()

	state := MainMenu
	for state != Exit {
		next, err := l.Step(ctx, state)
		if err != nil {
			if stderrors.Is(err, io.EOF) || ctx.Err() != nil {
				l.logger.Debug("interactive loop stopped", "state", state.String(), "error", err)
				return nil
			}
			return fmt.Errorf("reading input in %s: %w", state, err)
		}
		l.logger.Debug("state transition", "from", state.String(), "to", next.String())
		state = next
	}
	return nil
}

// Step runs one state and returns the next one.
func (l *Loop) Step(ctx context.Context, state State) (State, error) {
	switch state {
	case MainMenu:
		return l.mainMenu(ctx)
	case SearchByName:
		return l.searchByName(ctx)
	case SearchByArea:
		return l.searchByArea(ctx)
	default:
		return Exit, nil
	}
}

func (l *Loop) banner() {
	block := bannerStyle.Render(l.printer.Text(i18n.Banner))
	for _, line := range strings.Split(block, "\n") {
		l.sink.Print(line)
	}
}

func (l *Loop) mainMenu(ctx context.Context) (State, error) {
	l.sink.Print("")
	l.sink.Print(l.printer.Text(i18n.MenuTitle))
	l.sink.Print(l.printer.Text(i18n.MenuByName))
	l.sink.Print(l.printer.Text(i18n.MenuByArea))
	l.sink.Print(l.printer.Text(i18n.MenuExit))

	choice, err := l.asker.Ask(ctx, l.printer.Text(i18n.PromptChoice),
		[]string{choiceByName, choiceByArea, choiceExit})
	if err != nil {
		return MainMenu, err
	}

	switch choice {
	case choiceByName:
		return SearchByName, nil
	case choiceByArea:
		return SearchByArea, nil
	default:
		l.sink.Print(l.printer.Text(i18n.Farewell))
		return Exit, nil
	}
}

func (l *Loop) searchByName(ctx context.Context) (State, error) {
	name, err := l.asker.AskText(ctx, l.printer.Text(i18n.PromptName))
	if err != nil {
		return SearchByName, err
	}

	summaries, err := l.catalog.SearchByName(ctx, name)
	switch {
	case ctx.Err() != nil:
		return SearchByName, ctx.Err()
	case stderrors.Is(err, catalog.ErrNoResults):
		l.sink.Print(l.printer.Sprintf(i18n.NoResults, name))
	case err != nil:
		l.logger.Warn("search by name failed", "name", name, "error", err)
		l.sink.Print(l.printer.Text(i18n.ErrConnect))
	default:
		l.sink.Print(l.printer.Sprintf(i18n.FoundByName, len(summaries), name))
		l.renderer.RenderBatch(ctx, summaries)
	}
	return MainMenu, nil
}

func (l *Loop) searchByArea(ctx context.Context) (State, error) {
	areas, err := l.catalog.ListAreas(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return SearchByArea, ctx.Err()
		}
		l.logger.Warn("listing areas failed", "error", err)
		l.sink.Print(l.printer.Text(i18n.ErrConnect))
		return MainMenu, nil
	}

	l.sink.Print(l.printer.Text(i18n.AreaListTitle))
	if len(areas) == 0 {
		l.sink.Print(l.printer.Text(i18n.NoAreas))
		return MainMenu, nil
	}
	for i, a := range areas {
		l.sink.Print(fmt.Sprintf("%d. %s", i+1, a))
	}

	choices := lo.Times(len(areas), func(i int) string { return strconv.Itoa(i + 1) })
	choice, err := l.asker.Ask(ctx, l.printer.Text(i18n.PromptArea), choices)
	if err != nil {
		return SearchByArea, err
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(areas) {
		// Ask only returns listed choices
		return MainMenu, fmt.Errorf("unexpected area choice %q", choice)
	}
	area := areas[idx-1]

	summaries, err := l.catalog.FilterByArea(ctx, area)
	switch {
	case ctx.Err() != nil:
		return SearchByArea, ctx.Err()
	case err != nil:
		l.logger.Warn("filter by area failed", "area", area.String(), "error", err)
		l.sink.Print(l.printer.Text(i18n.ErrConnect))
	case len(summaries) > 0:
		l.sink.Print(l.printer.Sprintf(i18n.FoundByArea, len(summaries), area.String()))
		l.renderer.RenderBatch(ctx, summaries)
	}
	return MainMenu, nil
}
