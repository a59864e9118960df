package pipeline

import (
	"fmt"

	"github.com/stowage-dev/stowage/pkg/catalog"
	"github.com/stowage-dev/stowage/pkg/inventory"
	"github.com/stowage-dev/stowage/pkg/lines"
)

// Audit entry labels.
const (
	LabelStored     = "Stored"
	LabelDiscarded  = "Discarded"
	LabelUnresolved = "Unresolved"
)

// Entry is one audit log record: the outcome of a single stack decision,
// the stack's size, and the item's display name.
type Entry struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
	Name  string `json:"name"`
}

// String formats the entry fixed-width so labels and sizes line up in the
// processing log, e.g. "Stored    ( 3) Torch".
func (e Entry) String() string {
	return fmt.Sprintf("%-9s (%2d) %s", e.Label, e.Size, e.Name)
}

// Process is the orchestrator: it segments the stream and allocates
// inventories in one logical scan, drops the preamble segment, pairs each
// remaining segment positionally with its inventory (truncating to the
// shorter side), resolves each segment's stacks, and decides store/discard
// per stack while writing one audit entry per decision.
//
// The output has exactly one Filled per marker, in marker order. Entries
// within a Filled follow the request order of its segment.
func Process(ls []lines.Line, cat *catalog.Catalog, opts Options) []Filled {
	opts.SetDefaults()

	segments := Segment(ls)
	inventories := Inventories(ls)

	// Drop the preamble, then zip element-wise. Segment always returns one
	// segment more than there are markers, so payload and inventories have
	// equal length; min() keeps a malformed pairing from panicking.
	payload := segments[1:]
	n := min(len(payload), len(inventories))

	filled := make([]Filled, 0, n)
	for i := 0; i < n; i++ {
		filled = append(filled, fill(inventories[i], resolutions(cat, payload[i], opts.sizer()), opts))
	}
	return filled
}

// fill runs the capacity engine over one inventory's resolved stacks,
// interleaving each decision with its audit entry so every entry reflects
// the occupancy at decision time. Unresolved requests produce no entry and
// no occupancy change unless opts.LogUnresolved is set.
func fill(inv *inventory.Inventory, res []resolution, opts Options) Filled {
	var entries []Entry
	for _, r := range res {
		if !r.ok {
			if opts.LogUnresolved {
				entries = append(entries, Entry{
					Label: LabelUnresolved,
					Size:  r.line.Quantity,
					Name:  fmt.Sprintf("item %d", r.line.ItemID),
				})
			}
			continue
		}
		label := LabelDiscarded
		if inv.Add(r.stack) {
			label = LabelStored
		}
		entries = append(entries, Entry{Label: label, Size: r.stack.Size(), Name: r.stack.Item.Name})
	}
	return Filled{Log: entries, Inventory: inv}
}

// tally aggregates decision counts across the filled inventories.
func tally(filled []Filled) (stored, discarded, unresolved int) {
	for _, f := range filled {
		for _, e := range f.Log {
			switch e.Label {
			case LabelStored:
				stored++
			case LabelDiscarded:
				discarded++
			default:
				unresolved++
			}
		}
	}
	return stored, discarded, unresolved
}
