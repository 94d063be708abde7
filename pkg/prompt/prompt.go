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

package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/resepfinder/resep/pkg/errors"
	"github.com/resepfinder/resep/pkg/i18n"
)

// maxListedChoices is the longest choice list shown in full in a label.
const maxListedChoices = 6

// ErrNoChoices is returned by Ask when there is nothing to choose from.
var ErrNoChoices = errors.New(errors.ErrCodeInvalidRequest, "no choices to select from")

type line struct {
	text string
	err  error
}

// Prompter asks questions on out and reads answers from in, one line each.
type Prompter struct {
	in      io.Reader
	out     io.Writer
	printer *i18n.Printer

	once  sync.Once
	lines chan line
	err   error
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithPrinter sets the printer used for the invalid choice message.
func WithPrinter(p *i18n.Printer) Option {
	return func(pr *Prompter) {
		if p != nil {
			pr.printer = p
		}
	}
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, options ...Option) *Prompter {
	p := &Prompter{
		in:      in,
		out:     out,
		printer: i18n.Default(),
		lines:   make(chan line),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Ask prints label with the allowed choices and reads answers until one of
// choices is entered. Returns the trimmed answer, ErrNoChoices when choices
// is empty, io.EOF when input ends, or the context error.
func (p *Prompter) Ask(ctx context.Context, label string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}
	question := fmt.Sprintf("%s [%s]: ", label, describe(choices))
	for {
		answer, err := p.ask(ctx, question)
		if err != nil {
			return "", err
		}
		if slices.Contains(choices, answer) {
			return answer, nil
		}
		_, _ = fmt.Fprintln(p.out, p.printer.Text(i18n.InvalidChoice))
	}
}

// AskText prints label and returns the next line trimmed. A blank line is a
// valid answer and yields the empty string.
func (p *Prompter) AskText(ctx context.Context, label string) (string, error) {
	return p.ask(ctx, label+": ")
}

func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	_, _ = io.WriteString(p.out, question)
	text, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// readLine waits for the next input line. The scanner runs on its own
// goroutine so that a blocked terminal read does not hold up cancellation.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.once.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-p.lines:
		if l.err != nil {
			p.err = l.err
			return "", l.err
		}
		return l.text, nil
	}
}

func (p *Prompter) scan() {
	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- line{text: sc.Text()}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	p.lines <- line{err: err}
}

// describe lists choices as "a/b/c", eliding the middle of long lists.
func describe(choices []string) string {
	if len(choices) <= maxListedChoices {
		return strings.Join(choices, "/")
	}
	return strings.Join(choices[:2], "/") + "/.../" + choices[len(choices)-1]
}
