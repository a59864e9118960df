package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunnerExecute(t *testing.T) {
	items := writeFixture(t, "items.txt", "1 Torch\n2 Rope\n")
	requests := writeFixture(t, "requests.txt", `# preamble comment
inventory 5
1 3
2 3
inventory 10
1 3
`)

	result, err := NewRunner(nil).Execute(context.Background(), Options{
		CatalogPath:  items,
		RequestsPath: requests,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID should be set")
	}
	if result.Catalog.Len() != 2 {
		t.Errorf("catalog items = %d, want 2", result.Catalog.Len())
	}
	if result.Stats.LineCount != 6 {
		t.Errorf("LineCount = %d, want 6", result.Stats.LineCount)
	}
	if result.Stats.InventoryCount != 2 {
		t.Errorf("InventoryCount = %d, want 2", result.Stats.InventoryCount)
	}
	if result.Stats.StoredCount != 2 {
		t.Errorf("StoredCount = %d, want 2", result.Stats.StoredCount)
	}
	if result.Stats.DiscardedCount != 1 {
		t.Errorf("DiscardedCount = %d, want 1", result.Stats.DiscardedCount)
	}
}

func TestRunnerExecuteTOMLCatalog(t *testing.T) {
	items := writeFixture(t, "items.toml", `
[[item]]
id = 1
name = "Anvil"
weight = 10
`)
	requests := writeFixture(t, "requests.txt", "inventory 25\n1 2\n1 1\n")

	result, err := NewRunner(nil).Execute(context.Background(), Options{
		CatalogPath:  items,
		RequestsPath: requests,
		Weighted:     true,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	inv := result.Inventories[0].Inventory
	// 2×10 stored, then 1×10 rejected (20+10 > 25).
	if inv.Occupied() != 20 {
		t.Errorf("occupancy = %d, want 20", inv.Occupied())
	}
	if result.Stats.DiscardedCount != 1 {
		t.Errorf("DiscardedCount = %d, want 1", result.Stats.DiscardedCount)
	}
}

func TestRunnerExecuteMissingFiles(t *testing.T) {
	requests := writeFixture(t, "requests.txt", "inventory 5\n")

	_, err := NewRunner(nil).Execute(context.Background(), Options{
		CatalogPath:  filepath.Join(t.TempDir(), "nope.txt"),
		RequestsPath: requests,
	})
	if err == nil {
		t.Error("missing catalog file should fail")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{})
	if err == nil {
		t.Error("empty options should fail validation")
	}
}

func TestRunnerExecuteCancelled(t *testing.T) {
	items := writeFixture(t, "items.txt", "1 Torch\n")
	requests := writeFixture(t, "requests.txt", "inventory 5\n1 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRunner(nil).Execute(ctx, Options{
		CatalogPath:  items,
		RequestsPath: requests,
	}); err == nil {
		t.Error("cancelled context should abort the run")
	}
}
