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

package recipe

import "strings"

// Card is the display-ready view of a Detail: ingredients flattened and
// instructions split into lines. Empty fields mean the catalog had no value.
// Thumbnail, Tags and Source appear only in the structured formats; the table
// keeps the five rows of the interactive view.
type Card struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	Area         string   `json:"area,omitempty" yaml:"area,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Video        string   `json:"video,omitempty" yaml:"video,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Source       string   `json:"source,omitempty" yaml:"source,omitempty"`
}

// NewCard builds the display view of d. Blank text fields are normalized to
// the empty string so that callers only have one notion of "missing".
func NewCard(d *Detail) Card {
	if d == nil {
		return Card{}
	}
	return Card{
		ID:           d.ID,
		Name:         d.Name,
		Category:     blankToEmpty(d.Category),
		Area:         blankToEmpty(string(d.Area)),
		Ingredients:  ExtractIngredients(d),
		Instructions: FormatInstructions(blankToEmpty(d.Instructions)),
		Video:        blankToEmpty(d.Video),
		Thumbnail:    blankToEmpty(d.Thumbnail),
		Tags:         d.Tags,
		Source:       blankToEmpty(d.Source),
	}
}

func blankToEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
