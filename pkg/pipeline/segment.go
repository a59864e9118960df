package pipeline

import (
	"github.com/stowage-dev/stowage/pkg/inventory"
	"github.com/stowage-dev/stowage/pkg/lines"
)

// Segment partitions a classified line stream into contiguous sub-sequences,
// splitting on every inventory marker. Markers are boundaries, not payload:
// they appear in no segment. The first segment is everything before the
// first marker (the preamble, discarded by the orchestrator); each of the
// remaining segments belongs to the marker immediately preceding it.
//
// Input with no markers yields exactly one segment holding the whole
// stream. Segments are sub-slices of ls, not copies.
func Segment(ls []lines.Line) [][]lines.Line {
	segments := [][]lines.Line{}
	start := 0
	for i, line := range ls {
		if line.Kind == lines.KindInventory {
			segments = append(segments, ls[start:i])
			start = i + 1
		}
	}
	return append(segments, ls[start:])
}

// Inventories scans the same stream once and constructs one inventory per
// marker, in encounter order. Capacity values are taken as-is; a malformed
// or negative capacity is the capacity engine's problem, not filtered here.
func Inventories(ls []lines.Line) []*inventory.Inventory {
	var out []*inventory.Inventory
	for _, line := range ls {
		if line.Kind == lines.KindInventory {
			out = append(out, inventory.New(line.Capacity))
		}
	}
	return out
}
