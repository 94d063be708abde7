package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		lang    string
		want    string
		wantErr bool
	}{
		{"", "id", false},
		{"id", "id", false},
		{"id-ID", "id", false},
		{"en", "en", false},
		{"en-GB", "en", false},
		{"fr", "", true},
		{"not a tag!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			p, err := New(tt.lang)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, IsSupported(tt.lang))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Language())
			assert.True(t, IsSupported(tt.lang))
		})
	}
}

func TestIndonesianMessages(t *testing.T) {
	p := Default()

	assert.Equal(t, "Pilih metode pencarian:", p.Text(MenuTitle))
	assert.Equal(t, "Tidak tersedia", p.Text(NotAvailable))
	assert.Equal(t, "Ditemukan 3 resep untuk makanan: spaghetti", p.Sprintf(FoundByName, 3, "spaghetti"))
	assert.Equal(t, "Tidak ditemukan resep untuk makanan: zzz", p.Sprintf(NoResults, "zzz"))
	assert.Equal(t, "Ditemukan 2 resep dari Canadian", p.Sprintf(FoundByArea, 2, "Canadian"))
}

func TestEnglishMessages(t *testing.T) {
	p, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Choose a search method:", p.Text(MenuTitle))
	assert.Equal(t, "Found 1 recipes for dish: soto", p.Sprintf(FoundByName, 1, "soto"))
}

func TestEveryKeyTranslated(t *testing.T) {
	keys := []Key{
		Banner, MenuTitle, MenuByName, MenuByArea, MenuExit, PromptChoice,
		PromptName, PromptArea, InvalidChoice, ErrConnect, NoResults,
		FoundByName, AreaListTitle, NoAreas, FoundByArea, Farewell, Progress,
		NotAvailable, ColumnInfo, ColumnDetail, RowCategory, RowArea,
		RowIngredients, RowInstructions, RowVideo, Untitled,
	}
	assert.Len(t, indonesian, len(keys))

	for _, k := range keys {
		text, ok := indonesian[k]
		assert.True(t, ok, "missing translation for %q", k)
		assert.Equal(t, strings.Count(string(k), "%"), strings.Count(text, "%"),
			"verb count differs for %q", k)
	}
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"id", "en"}, Supported())
}
