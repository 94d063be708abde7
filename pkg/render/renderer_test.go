package render

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/resepfinder/resep/pkg/header"
	"github.com/resepfinder/resep/pkg/i18n"
	"github.com/resepfinder/resep/pkg/recipe"
)

type fakeFetcher struct {
	mu      sync.Mutex
	details map[string]*recipe.Detail
	errs    map[string]error
	delays  map[string]time.Duration
	calls   []string

	inflight    atomic.Int32
	maxInflight atomic.Int32
}

func (f *fakeFetcher) GetDetail(ctx context.Context, id string) (*recipe.Detail, error) {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		cur := f.maxInflight.Load()
		if n <= cur || f.maxInflight.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, id)
	delay := f.delays[id]
	d, err := f.details[id], f.errs[id]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return d, err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type countingProgress struct {
	n int
}

func (c *countingProgress) Advance() { c.n++ }

func detail(id, name string) *recipe.Detail {
	return &recipe.Detail{
		ID:           id,
		Name:         name,
		Category:     "Side",
		Area:         "Turkish",
		Instructions: "Pick through your lentils. Rinse well.",
		Video:        "https://www.youtube.com/watch?v=VVnZd8A84z4",
		Ingredients: []recipe.Ingredient{
			{Index: 1, Name: "Lentils", Measure: "1 cup"},
			{Index: 2, Name: "Onion", Measure: "1 large"},
		},
	}
}

func newTestRenderer(f DetailFetcher, opts ...Option) (*Renderer, *BufferSink, *countingProgress) {
	sink := &BufferSink{}
	progress := &countingProgress{}
	opts = append([]Option{WithProgressFactory(func(int) Progress { return progress })}, opts...)
	return New(f, sink, opts...), sink, progress
}

func TestRenderBatch_OneTablePerResolvableID(t *testing.T) {
	f := &fakeFetcher{details: map[string]*recipe.Detail{
		"52772": detail("52772", "Teriyaki Chicken Casserole"),
		"52773": detail("52773", "Honey Teriyaki Salmon"),
	}}
	r, sink, progress := newTestRenderer(f)

	summaries := []recipe.Summary{
		recipe.BareID("52772"),
		recipe.Invalid(),
		recipe.Record("52773", "Honey Teriyaki Salmon", ""),
	}

	n := r.RenderBatch(context.Background(), summaries)

	assert.Equal(t, 2, n)
	assert.Equal(t, 3, progress.n, "progress advances once per summary")
	assert.Equal(t, []string{"52772", "52773"}, f.calls)

	out := sink.String()
	first := strings.Index(out, "Teriyaki Chicken Casserole")
	second := strings.Index(out, "Honey Teriyaki Salmon")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "tables follow input order")

	for _, want := range []string{"Informasi", "Detail", "Kategori", "Bahan-bahan", "Instruksi", "Link Youtube", "1 cup Lentils", "Turkish"} {
		assert.Contains(t, out, want)
	}
	lines := sink.Lines()
	assert.Equal(t, "", lines[len(lines)-1], "blank line follows each table")
}

func TestRenderBatch_SkipsMissingAndFailed(t *testing.T) {
	f := &fakeFetcher{
		details: map[string]*recipe.Detail{"1": detail("1", "Corba")},
		errs:    map[string]error{"2": errors.New("connection refused")},
	}
	r, sink, progress := newTestRenderer(f)

	n := r.RenderBatch(context.Background(), []recipe.Summary{
		recipe.BareID("2"),
		recipe.BareID("404"),
		recipe.BareID("1"),
		recipe.BareID(" "),
	})

	assert.Equal(t, 1, n)
	assert.Equal(t, 4, progress.n)
	assert.Equal(t, 3, f.callCount(), "blank id is never fetched")
	assert.Contains(t, sink.String(), "Corba")
}

func TestRenderBatch_Empty(t *testing.T) {
	f := &fakeFetcher{}
	r, sink, progress := newTestRenderer(f)

	assert.Equal(t, 0, r.RenderBatch(context.Background(), nil))
	assert.Equal(t, 0, progress.n)
	assert.Empty(t, sink.Lines())
}

func TestRenderBatch_MissingFieldsShowDefault(t *testing.T) {
	f := &fakeFetcher{details: map[string]*recipe.Detail{
		"7": {ID: "7", Name: "Mystery"},
	}}
	r, sink, _ := newTestRenderer(f)

	require.Equal(t, 1, r.RenderBatch(context.Background(), []recipe.Summary{recipe.BareID("7")}))

	out := sink.String()
	assert.Equal(t, 5, strings.Count(out, "Tidak tersedia"))
}

func TestRenderBatch_UntitledRecipe(t *testing.T) {
	f := &fakeFetcher{details: map[string]*recipe.Detail{"8": {ID: "8"}}}
	r, sink, _ := newTestRenderer(f, WithPrinter(mustPrinter(t, "en")))

	r.RenderBatch(context.Background(), []recipe.Summary{recipe.BareID("8")})

	out := sink.String()
	assert.Contains(t, out, "Untitled recipe")
	assert.Contains(t, out, "Not available")
	assert.Contains(t, out, "Information")
}

func TestRenderBatch_ConcurrentKeepsOrder(t *testing.T) {
	f := &fakeFetcher{
		details: map[string]*recipe.Detail{},
		delays:  map[string]time.Duration{},
	}
	var summaries []recipe.Summary
	names := []string{"Apam", "Bakso", "Cendol", "Dodol", "Empal", "Gudeg"}
	for i, name := range names {
		id := string(rune('a' + i))
		f.details[id] = detail(id, name)
		// earlier items finish later
		f.delays[id] = time.Duration(len(names)-i) * 5 * time.Millisecond
		summaries = append(summaries, recipe.BareID(id))
	}

	r, sink, progress := newTestRenderer(f, WithConcurrency(3))
	n := r.RenderBatch(context.Background(), summaries)

	assert.Equal(t, len(names), n)
	assert.Equal(t, len(names), progress.n)
	assert.LessOrEqual(t, f.maxInflight.Load(), int32(3))

	out := sink.String()
	last := -1
	for _, name := range names {
		idx := strings.Index(out, name)
		require.NotEqual(t, -1, idx, name)
		assert.Greater(t, idx, last, "%s out of order", name)
		last = idx
	}
}

func TestRenderBatch_CanceledContext(t *testing.T) {
	f := &fakeFetcher{details: map[string]*recipe.Detail{"1": detail("1", "Corba")}}
	for _, c := range []int{1, 4} {
		r, _, progress := newTestRenderer(f, WithConcurrency(c))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		n := r.RenderBatch(ctx, []recipe.Summary{recipe.BareID("1"), recipe.BareID("1")})

		assert.Equal(t, 0, n)
		assert.Equal(t, 2, progress.n)
	}
	assert.Equal(t, 0, f.callCount())
}

func TestRenderBatch_JSONFormat(t *testing.T) {
	d := detail("1", "Corba")
	d.Tags = []string{"Soup"}
	d.Source = "https://findingtimeforcooking.com/main-dishes/red-lentil-soup-corba/"
	f := &fakeFetcher{details: map[string]*recipe.Detail{"1": d}}
	r, sink, _ := newTestRenderer(f, WithFormat(FormatJSON))

	require.Equal(t, 1, r.RenderBatch(context.Background(), []recipe.Summary{recipe.BareID("1")}))

	var doc document
	require.NoError(t, json.Unmarshal([]byte(sink.String()), &doc))
	assert.Equal(t, header.KindRecipe, doc.Kind)
	assert.Equal(t, "id", doc.Metadata["language"])
	_, err := time.Parse(time.RFC3339, doc.Metadata["timestamp"])
	assert.NoError(t, err)
	card := doc.Card
	assert.Equal(t, "Corba", card.Name)
	assert.Equal(t, []string{"1 cup Lentils", "1 large Onion"}, card.Ingredients)
	assert.Equal(t, "Pick through your lentils.\nRinse well.", card.Instructions)
	assert.Equal(t, []string{"Soup"}, card.Tags)
	assert.Equal(t, d.Source, card.Source)
}

func TestRenderBatch_YAMLFormat(t *testing.T) {
	f := &fakeFetcher{details: map[string]*recipe.Detail{"1": detail("1", "Corba")}}
	r, sink, _ := newTestRenderer(f, WithFormat(FormatYAML))

	require.Equal(t, 1, r.RenderBatch(context.Background(), []recipe.Summary{recipe.BareID("1")}))

	var doc document
	require.NoError(t, yaml.Unmarshal([]byte(sink.String()), &doc))
	assert.Equal(t, header.APIVersion, doc.APIVersion)
	assert.Equal(t, "Turkish", doc.Area)
}

func TestRenderBatch_YAMLStream(t *testing.T) {
	f := &fakeFetcher{details: map[string]*recipe.Detail{
		"1": detail("1", "Corba"),
		"2": detail("2", "Soto"),
	}}
	r, sink, _ := newTestRenderer(f, WithFormat(FormatYAML))

	require.Equal(t, 2, r.RenderBatch(context.Background(), []recipe.Summary{recipe.BareID("1"), recipe.BareID("2")}))

	dec := yaml.NewDecoder(strings.NewReader(sink.String()))
	var names []string
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		names = append(names, doc.Name)
	}
	assert.Equal(t, []string{"Corba", "Soto"}, names)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithConcurrency_Bounds(t *testing.T) {
	assert.Equal(t, 1, New(nil, &BufferSink{}, WithConcurrency(0)).concurrency)
	assert.Equal(t, 4, New(nil, &BufferSink{}, WithConcurrency(4)).concurrency)
	assert.Equal(t, 16, New(nil, &BufferSink{}, WithConcurrency(1000)).concurrency)
}

func mustPrinter(t *testing.T, lang string) *i18n.Printer {
	t.Helper()
	p, err := i18n.New(lang)
	require.NoError(t, err)
	return p
}
