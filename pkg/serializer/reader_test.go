package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"resep.json", FormatJSON},
		{"RESEP.JSON", FormatJSON},
		{"resep.yaml", FormatYAML},
		{"resep.yml", FormatYAML},
		{"resep.conf", FormatYAML},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: pempek\nvalue: 7\n"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	var got testConfig
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Name != "pempek" || got.Value != 7 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestReader_RejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatYAML, "name: x\nbogus: 1\n"},
		{FormatJSON, `{"name":"x","bogus":1}`},
	}
	for _, tt := range tests {
		r, err := NewReader(tt.format, strings.NewReader(tt.input))
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		var got testConfig
		if err := r.Deserialize(&got); err == nil {
			t.Errorf("%s: expected unknown field error", tt.format)
		}
	}
}

func TestReader_EmptyYAML(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var got testConfig
	if err := r.Deserialize(&got); err != nil {
		t.Errorf("empty document should not fail: %v", err)
	}
}

func TestNewReader_UnknownFormat(t *testing.T) {
	if _, err := NewReader(Format("table"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(path, []byte(`{"name":"rawon","value":9}`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testConfig](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "rawon" || got.Value != 9 {
		t.Errorf("unexpected result: %+v", got)
	}

	if _, err := FromFile[testConfig](filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
