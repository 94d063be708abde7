package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind SummaryKind
		wantID   string
		wantOK   bool
		wantName string
	}{
		{
			name:     "bare string id",
			input:    `"52772"`,
			wantKind: SummaryBareID,
			wantID:   "52772",
			wantOK:   true,
		},
		{
			name:     "record with id",
			input:    `{"strMeal":"Teriyaki Chicken Casserole","strMealThumb":"https://x/t.jpg","idMeal":"52772"}`,
			wantKind: SummaryRecord,
			wantID:   "52772",
			wantOK:   true,
			wantName: "Teriyaki Chicken Casserole",
		},
		{
			name:     "record with numeric id",
			input:    `{"idMeal":52772}`,
			wantKind: SummaryRecord,
			wantID:   "52772",
			wantOK:   true,
		},
		{
			name:     "record without id",
			input:    `{"strMeal":"Mystery"}`,
			wantKind: SummaryInvalid,
		},
		{
			name:     "record with null id",
			input:    `{"idMeal":null}`,
			wantKind: SummaryInvalid,
		},
		{
			name:     "record with blank id",
			input:    `{"idMeal":"  "}`,
			wantKind: SummaryRecord,
		},
		{
			name:     "number",
			input:    `42`,
			wantKind: SummaryInvalid,
		},
		{
			name:     "null",
			input:    `null`,
			wantKind: SummaryInvalid,
		},
		{
			name:     "array",
			input:    `["52772"]`,
			wantKind: SummaryInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Summary
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.wantKind, s.Kind())

			id, ok := s.ID()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
			assert.Equal(t, tt.wantName, s.Name)
		})
	}
}

func TestSummaryListWithMixedEntries(t *testing.T) {
	var list []Summary
	input := `["1", {"idMeal":"2"}, {"strMeal":"no id"}, 3]`
	require.NoError(t, json.Unmarshal([]byte(input), &list))
	require.Len(t, list, 4)

	var ids []string
	for _, s := range list {
		if id, ok := s.ID(); ok {
			ids = append(ids, id)
		}
	}
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestSummaryKindString(t *testing.T) {
	assert.Equal(t, "bare-id", SummaryBareID.String())
	assert.Equal(t, "record", SummaryRecord.String())
	assert.Equal(t, "invalid", SummaryInvalid.String())
}
