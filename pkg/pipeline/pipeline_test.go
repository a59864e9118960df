package pipeline

import (
	"testing"

	"github.com/stowage-dev/stowage/pkg/catalog"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"invalid", true},
		{"TEXT", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	// Missing catalog path
	opts := Options{RequestsPath: "requests.txt"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("missing catalog path should fail")
	}

	// Missing requests path
	opts = Options{CatalogPath: "items.txt"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("missing requests path should fail")
	}

	// Bad format
	opts = Options{CatalogPath: "items.txt", RequestsPath: "requests.txt", Format: "yaml"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("invalid format should fail")
	}

	// Valid
	opts = Options{CatalogPath: "items.txt", RequestsPath: "requests.txt"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("valid options should pass: %v", err)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("Format = %q, want default %q", opts.Format, DefaultFormat)
	}
	if opts.Logger == nil {
		t.Error("Logger default not applied")
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{CatalogPath: "items.txt", RequestsPath: "requests.txt"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	originalFormat := opts.Format

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
	if opts.Format != originalFormat {
		t.Error("Format changed on second call")
	}
}

func TestOptionsSizer(t *testing.T) {
	// Default: unit policy.
	opts := Options{}
	if got := opts.sizer()(nil, 4); got != 4 {
		t.Errorf("default sizer(4) = %d, want 4", got)
	}

	// Weighted flag selects the weighted policy.
	opts = Options{Weighted: true}
	if got := opts.sizer()(nil, 4); got != 4 {
		t.Errorf("weighted sizer without item = %d, want 4", got)
	}

	// Explicit sizer wins over the Weighted flag.
	opts = Options{Weighted: true, Sizer: func(_ *catalog.Item, _ int) int { return 7 }}
	if got := opts.sizer()(nil, 4); got != 7 {
		t.Errorf("explicit sizer(4) = %d, want 7", got)
	}
}
