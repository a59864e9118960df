package errors

import (
	"strings"
	"testing"
)

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantErr  bool
		wantCode Code
	}{
		{
			name:    "valid relative path",
			path:    "testdata/items.txt",
			wantErr: false,
		},
		{
			name:    "valid absolute path",
			path:    "/tmp/requests.txt",
			wantErr: false,
		},
		{
			name:     "empty path",
			path:     "",
			wantErr:  true,
			wantCode: ErrCodeInvalidPath,
		},
		{
			name:     "path with null byte",
			path:     "items\x00.txt",
			wantErr:  true,
			wantCode: ErrCodeInvalidPath,
		},
		{
			name:     "path with control character",
			path:     "items\n.txt",
			wantErr:  true,
			wantCode: ErrCodeInvalidPath,
		},
		{
			name:     "path too long",
			path:     strings.Repeat("a", 501),
			wantErr:  true,
			wantCode: ErrCodeInvalidPath,
		},
		{
			name:    "path at max length",
			path:    strings.Repeat("a", 500),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateInputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr && GetCode(err) != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidateItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Photograph", wantErr: false},
		{name: "name with spaces", input: "Spare Anchor", wantErr: false},
		{name: "empty name", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "control character", input: "Rope\x01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCatalog) {
				t.Errorf("expected code %v, got %v", ErrCodeInvalidCatalog, GetCode(err))
			}
		})
	}
}

func TestValidateItemID(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr bool
	}{
		{name: "positive id", id: 1, wantErr: false},
		{name: "large id", id: 9999, wantErr: false},
		{name: "zero id", id: 0, wantErr: true},
		{name: "negative id", id: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemID(%d) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
