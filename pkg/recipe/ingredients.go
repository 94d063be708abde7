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
	"strings"

	"github.com/samber/lo"
)

// ExtractIngredients flattens the numbered ingredient pairs of d into display
// strings of the form "<measure> <ingredient>", trimmed of surrounding
// whitespace. Pairs whose ingredient is blank are dropped. Order follows the
// index; duplicates are kept.
func ExtractIngredients(d *Detail) []string {
	if d == nil {
		return nil
	}
	return lo.FilterMap(d.Ingredients, func(p Ingredient, _ int) (string, bool) {
		if p.Index < 1 || p.Index > MaxIngredients {
			return "", false
		}
		if strings.TrimSpace(p.Name) == "" {
			return "", false
		}
		return strings.TrimSpace(p.Measure + " " + p.Name), true
	})
}
