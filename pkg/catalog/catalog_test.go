package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	cat := New([]Item{
		{ID: 1, Name: "Torch"},
		{ID: 2, Name: "Rope"},
	})

	item, ok := cat.Lookup(2)
	if !ok {
		t.Fatal("Lookup(2) should succeed")
	}
	if item.Name != "Rope" {
		t.Errorf("Lookup(2).Name = %q, want Rope", item.Name)
	}

	if _, ok := cat.Lookup(99); ok {
		t.Error("Lookup(99) should fail")
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	cat := New([]Item{
		{ID: 7, Name: "First"},
		{ID: 7, Name: "Second"},
	})

	item, ok := cat.Lookup(7)
	if !ok {
		t.Fatal("Lookup(7) should succeed")
	}
	if item.Name != "First" {
		t.Errorf("duplicate id resolution: got %q, want First", item.Name)
	}
}

func TestLookupSharesBackingStorage(t *testing.T) {
	cat := New([]Item{{ID: 1, Name: "Torch"}})

	a, _ := cat.Lookup(1)
	b, _ := cat.Lookup(1)
	if a != b {
		t.Error("repeated lookups should return the same pointer")
	}
}

func TestNewCopiesInput(t *testing.T) {
	items := []Item{{ID: 1, Name: "Torch"}}
	cat := New(items)
	items[0].Name = "Mutated"

	item, _ := cat.Lookup(1)
	if item.Name != "Torch" {
		t.Errorf("caller mutation leaked into catalog: %q", item.Name)
	}
}

func TestWeighted(t *testing.T) {
	if New([]Item{{ID: 1, Name: "Torch"}}).Weighted() {
		t.Error("catalog without weights should not be weighted")
	}
	if !New([]Item{{ID: 1, Name: "Torch", Weight: 2}}).Weighted() {
		t.Error("catalog with a weight should be weighted")
	}
}

func TestRead(t *testing.T) {
	input := `# item catalog
1 Torch
2 Climbing Rope

not-an-item
3 Lantern
`
	cat, err := Read(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("Len = %d, want 3", cat.Len())
	}

	item, ok := cat.Lookup(2)
	if !ok || item.Name != "Climbing Rope" {
		t.Errorf("Lookup(2) = %v, %v; want Climbing Rope", item, ok)
	}
}

func TestReadLogsMalformedLines(t *testing.T) {
	var notices []string
	logf := func(format string, args ...any) {
		notices = append(notices, format)
	}

	_, err := Read(strings.NewReader("garbage\n1 Torch\n"), logf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(notices) != 1 {
		t.Errorf("got %d notices, want 1", len(notices))
	}
}

func TestReadSkipsInvalidItems(t *testing.T) {
	input := `0 Zero Id
-1 Negative Id
1 Torch
`
	cat, err := Read(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (non-positive ids skipped)", cat.Len())
	}
	if _, ok := cat.Lookup(0); ok {
		t.Error("id 0 should not have been loaded")
	}
}

func TestReadTOML(t *testing.T) {
	input := `
[[item]]
id = 1
name = "Torch"

[[item]]
id = 2
name = "Rope"
weight = 3
`
	cat, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}

	rope, ok := cat.Lookup(2)
	if !ok || rope.Weight != 3 {
		t.Errorf("Lookup(2) = %v, %v; want weight 3", rope, ok)
	}
	if !cat.Weighted() {
		t.Error("catalog should be weighted")
	}
}

func TestReadTOMLMissingName(t *testing.T) {
	input := "[[item]]\nid = 1\n"
	if _, err := ReadTOML(strings.NewReader(input)); err == nil {
		t.Error("item without name should fail")
	}
}

func TestReadTOMLRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-positive id", "[[item]]\nid = 0\nname = \"Torch\"\n"},
		{"negative weight", "[[item]]\nid = 1\nname = \"Torch\"\nweight = -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadTOML(strings.NewReader(tt.input)); err == nil {
				t.Error("invalid item should fail")
			}
		})
	}
}

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileAs(t *testing.T) {
	// TOML content behind a .txt extension: auto picks text and skips
	// every line, an explicit toml override parses it.
	path := writeCatalogFile(t, "items.txt", "[[item]]\nid = 1\nname = \"Torch\"\n")

	cat, err := LoadFileAs(path, FormatAuto, nil)
	if err != nil {
		t.Fatalf("auto load failed: %v", err)
	}
	if cat.Len() != 0 {
		t.Errorf("auto-detected text parse: Len = %d, want 0", cat.Len())
	}

	cat, err = LoadFileAs(path, FormatTOML, nil)
	if err != nil {
		t.Fatalf("toml load failed: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("toml override: Len = %d, want 1", cat.Len())
	}

	if _, err := LoadFileAs(path, "yaml", nil); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), nil); err == nil {
		t.Error("missing file should fail")
	}
}
