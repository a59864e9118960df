// Package lines classifies request-file lines into the tagged records the
// allocation pipeline consumes.
//
// Each line of a requests file is one of three kinds:
//
//   - an inventory marker ("inventory <capacity>") announcing a new
//     inventory and its maximum size,
//   - a stack request ("<item_id> <quantity>") asking to store a quantity
//     of one catalog item,
//   - anything else (blank lines, '#' comments, unparseable text).
//
// Item identifiers and quantities are positive integers; a line carrying a
// zero or negative value is unparseable text, not a request.
//
// The kind is a closed enum so downstream switches stay exhaustive. Order
// is significant everywhere: readers preserve the input sequence exactly,
// including Other records, because segmentation happens downstream.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stowage-dev/stowage/pkg/errors"
)

// Kind tags a classified line.
type Kind int

const (
	// KindOther marks comments, blank lines and unparseable text.
	KindOther Kind = iota

	// KindInventory marks an inventory marker carrying a capacity.
	KindInventory

	// KindStack marks a stack request carrying an item id and quantity.
	KindStack
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindInventory:
		return "inventory"
	case KindStack:
		return "stack"
	default:
		return "other"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output carries the
// kind name instead of a bare int.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inventory":
		*k = KindInventory
	case "stack":
		*k = KindStack
	case "other":
		*k = KindOther
	default:
		return fmt.Errorf("unknown line kind: %q", text)
	}
	return nil
}

// Line is one classified record. Capacity is meaningful only for
// KindInventory; ItemID and Quantity only for KindStack. Raw always holds
// the original text for diagnostics.
type Line struct {
	Kind     Kind   `json:"kind"`
	Capacity int    `json:"capacity,omitempty"`
	ItemID   int    `json:"item_id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Raw      string `json:"raw,omitempty"`
}

// markerKeyword introduces an inventory marker line.
const markerKeyword = "inventory"

// Classify turns one raw line into a classified record. It never fails:
// text that matches neither record shape becomes KindOther. A stack
// request needs a positive id and a positive quantity; a non-positive
// value in either field makes the line noise.
func Classify(raw string) Line {
	text := strings.TrimSpace(raw)
	if text == "" || text[0] == '#' {
		return Line{Kind: KindOther, Raw: raw}
	}

	fields := strings.Fields(text)
	if len(fields) == 2 {
		if strings.EqualFold(fields[0], markerKeyword) {
			if capacity, err := strconv.Atoi(fields[1]); err == nil {
				return Line{Kind: KindInventory, Capacity: capacity, Raw: raw}
			}
		} else if id, err := strconv.Atoi(fields[0]); err == nil && id > 0 {
			if qty, err := strconv.Atoi(fields[1]); err == nil && qty > 0 {
				return Line{Kind: KindStack, ItemID: id, Quantity: qty, Raw: raw}
			}
		}
	}

	return Line{Kind: KindOther, Raw: raw}
}

// Read classifies every line of r, preserving input order exactly.
func Read(r io.Reader) ([]Line, error) {
	var out []Line
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out = append(out, Classify(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request lines")
	}
	return out, nil
}

// ReadFile classifies every line of the file at path.
func ReadFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open requests %s", path)
	}
	defer f.Close()
	return Read(f)
}
