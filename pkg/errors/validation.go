package errors

import (
	"strings"
	"unicode"
)

// ValidateInputPath validates a user-supplied input file path for safety
// and basic sanity. Existence is checked later by the file readers; this
// only rejects paths that are obviously unusable.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateItemName validates a catalog item display name.
// Names must be non-empty after trimming and free of control characters.
func ValidateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidCatalog, "item name cannot be empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCatalog, "item name contains invalid control characters")
		}
	}
	return nil
}

// ValidateItemID validates a catalog item identifier.
// Identifiers are small positive integers.
func ValidateItemID(id int) error {
	if id <= 0 {
		return New(ErrCodeInvalidCatalog, "item id must be positive, got %d", id)
	}
	return nil
}
