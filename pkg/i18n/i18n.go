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

// Package i18n holds the user-facing messages of resep in Indonesian (the
// default) and English, backed by golang.org/x/text message catalogs.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	supported = []language.Tag{language.Indonesian, language.English}
	matcher   = language.NewMatcher(supported)
	cat       = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Indonesian))
	for key, text := range indonesian {
		if err := b.SetString(language.Indonesian, string(key), text); err != nil {
			panic(fmt.Sprintf("invalid message %q: %v", key, err))
		}
		if err := b.SetString(language.English, string(key), string(key)); err != nil {
			panic(fmt.Sprintf("invalid message %q: %v", key, err))
		}
	}
	return b
}

// Supported returns the language codes accepted by New.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}

// IsSupported reports whether lang resolves to a supported language.
func IsSupported(lang string) bool {
	_, err := resolve(lang)
	return err == nil
}

func resolve(lang string) (language.Tag, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return language.Indonesian, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported language %q (supported: %s)",
			lang, strings.Join(Supported(), ", "))
	}
	return supported[idx], nil
}

// Printer formats messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Printer for lang, e.g. "id", "en", or "en-GB".
// An empty lang selects Indonesian.
func New(lang string) (*Printer, error) {
	tag, err := resolve(lang)
	if err != nil {
		return nil, err
	}
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

// Default returns the Indonesian Printer.
func Default() *Printer {
	p, _ := New("")
	return p
}

// Language returns the resolved language code.
func (p *Printer) Language() string {
	return p.tag.String()
}

// Sprintf formats the message identified by key.
func (p *Printer) Sprintf(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}

// Text returns a message that takes no arguments.
func (p *Printer) Text(key Key) string {
	return p.p.Sprintf(string(key))
}
