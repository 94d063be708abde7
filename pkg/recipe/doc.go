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

// Package recipe models catalog data: areas, recipe summaries and full
// recipe details.
//
// # Summaries
//
// Search and filter results are lists of Summary values. The catalog may
// send a bare id string or an object; anything else decodes to an invalid
// summary that callers skip:
//
//	"52772"                                   → BareID("52772")
//	{"idMeal": "52772", "strMeal": "..."}     → Record("52772", ...)
//	{"strMeal": "..."} or 42 or null          → Invalid()
//
// Summary.ID resolves the id of the first two kinds.
//
// # Details
//
// Detail folds the numbered strIngredientN/strMeasureN fields (N = 1..20)
// into an ordered Ingredients slice. ExtractIngredients turns it into display
// lines such as "1 cup Lentils", dropping blank ingredients, and
// FormatInstructions breaks instructions after each sentence.
//
// Card is the display view of a Detail used by the renderer.
package recipe
