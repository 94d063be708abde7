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

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxIngredients is the number of numbered ingredient/measure field pairs a
// catalog record can carry (strIngredient1..strIngredient20).
const MaxIngredients = 20

const (
	ingredientFieldPrefix = "strIngredient"
	measureFieldPrefix    = "strMeasure"
)

// Ingredient is one numbered ingredient/measure pair as sent by the catalog.
// Index is 1-based.
type Ingredient struct {
	Index   int    `json:"index" yaml:"index"`
	Name    string `json:"name" yaml:"name"`
	Measure string `json:"measure,omitempty" yaml:"measure,omitempty"`
}

// Detail is the full record for one recipe. Text fields hold the empty string
// when the catalog omitted them or sent null.
type Detail struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Category     string       `json:"category,omitempty" yaml:"category,omitempty"`
	Area         Area         `json:"area,omitempty" yaml:"area,omitempty"`
	Instructions string       `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Video        string       `json:"video,omitempty" yaml:"video,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Tags         []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Source       string       `json:"source,omitempty" yaml:"source,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}

// UnmarshalJSON decodes a catalog meal object. The numbered ingredient
// fields are folded into Ingredients in ascending index order; a pair is kept
// whenever its ingredient field is a string, blank or not.
func (d *Detail) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode recipe detail: %w", err)
	}

	str := func(key string) string {
		v, _ := textField(fields, key)
		return v
	}

	out := Detail{
		Name:         str("strMeal"),
		Category:     str("strCategory"),
		Area:         Area(str("strArea")),
		Instructions: str("strInstructions"),
		Video:        str("strYoutube"),
		Thumbnail:    str("strMealThumb"),
		Source:       str("strSource"),
		Tags:         splitTags(str("strTags")),
	}
	if id, ok := scalarString(fields["idMeal"]); ok {
		out.ID = id
	}

	for i := 1; i <= MaxIngredients; i++ {
		suffix := strconv.Itoa(i)
		name, ok := textField(fields, ingredientFieldPrefix+suffix)
		if !ok {
			continue
		}
		out.Ingredients = append(out.Ingredients, Ingredient{
			Index:   i,
			Name:    name,
			Measure: str(measureFieldPrefix + suffix),
		})
	}

	*d = out
	return nil
}

// textField returns the string value of key and whether it was a JSON string.
func textField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
