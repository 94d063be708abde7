package recipe

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIngredients(t *testing.T) {
	tests := []struct {
		name string
		in   *Detail
		want []string
	}{
		{
			name: "nil detail",
			in:   nil,
			want: nil,
		},
		{
			name: "measure and ingredient",
			in: &Detail{Ingredients: []Ingredient{
				{Index: 1, Name: "Lentils", Measure: "1 cup"},
				{Index: 2, Name: "Onion", Measure: "1 large"},
			}},
			want: []string{"1 cup Lentils", "1 large Onion"},
		},
		{
			name: "blank ingredients dropped",
			in: &Detail{Ingredients: []Ingredient{
				{Index: 1, Name: "Salt", Measure: "pinch"},
				{Index: 2, Name: "", Measure: "1 tsp"},
				{Index: 3, Name: "   ", Measure: "2 tbs"},
				{Index: 4, Name: "Pepper"},
			}},
			want: []string{"pinch Salt", "Pepper"},
		},
		{
			name: "outer whitespace trimmed only",
			in: &Detail{Ingredients: []Ingredient{
				{Index: 1, Name: "Flour ", Measure: " 200g"},
			}},
			want: []string{"200g Flour"},
		},
		{
			name: "duplicates kept",
			in: &Detail{Ingredients: []Ingredient{
				{Index: 1, Name: "Egg", Measure: "1"},
				{Index: 2, Name: "Egg", Measure: "1"},
			}},
			want: []string{"1 Egg", "1 Egg"},
		},
		{
			name: "out of range index dropped",
			in: &Detail{Ingredients: []Ingredient{
				{Index: 0, Name: "Zero"},
				{Index: 21, Name: "TwentyOne"},
			}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIngredients(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, len(tt.want), len(got))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

// Random details never yield blank entries, more than MaxIngredients
// entries, or entries out of index order.
func TestExtractIngredients_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"", " ", "\t", "Garlic", "Rice", " Chili ", "Egg"}
	measures := []string{"", "1", "2 cups", " ", "pinch"}

	for run := 0; run < 200; run++ {
		d := &Detail{}
		for i := 1; i <= MaxIngredients; i++ {
			if rng.Intn(3) == 0 {
				continue
			}
			d.Ingredients = append(d.Ingredients, Ingredient{
				Index:   i,
				Name:    names[rng.Intn(len(names))],
				Measure: measures[rng.Intn(len(measures))],
			})
		}

		got := ExtractIngredients(d)
		assert.LessOrEqual(t, len(got), MaxIngredients)

		var expected []string
		for _, p := range d.Ingredients {
			if strings.TrimSpace(p.Name) != "" {
				expected = append(expected, strings.TrimSpace(p.Measure+" "+p.Name))
			}
		}
		for i, line := range got {
			assert.NotEmpty(t, strings.TrimSpace(line))
			assert.Equal(t, expected[i], line, "run %d entry %d", run, i)
		}
		assert.Equal(t, len(expected), len(got))
	}
}
