package pipeline

import (
	"github.com/stowage-dev/stowage/pkg/catalog"
	"github.com/stowage-dev/stowage/pkg/inventory"
	"github.com/stowage-dev/stowage/pkg/lines"
)

// resolution pairs one stack-request line with its lookup outcome. Keeping
// the misses around lets the orchestrator surface them in the audit log
// when asked to, in their original position.
type resolution struct {
	line  lines.Line
	stack inventory.Stack
	ok    bool
}

// resolutions walks one segment and looks up every stack request in the
// catalog, preserving relative order. Non-request records are dropped.
func resolutions(cat *catalog.Catalog, segment []lines.Line, sizer inventory.Sizer) []resolution {
	var out []resolution
	for _, line := range segment {
		if line.Kind != lines.KindStack {
			continue
		}
		item, ok := cat.Lookup(line.ItemID)
		res := resolution{line: line, ok: ok}
		if ok {
			res.stack = inventory.NewStack(item, line.Quantity, sizer)
		}
		out = append(out, res)
	}
	return out
}

// Resolve maps one segment to the ordered sequence of stacks it requests,
// one per stack-request record whose item id is found in the catalog.
// Records that are not stack requests, and requests for unknown items, are
// omitted; no error is raised for either. When duplicate catalog entries
// share an identifier, the first one wins.
func Resolve(cat *catalog.Catalog, segment []lines.Line, sizer inventory.Sizer) []inventory.Stack {
	var stacks []inventory.Stack
	for _, res := range resolutions(cat, segment, sizer) {
		if res.ok {
			stacks = append(stacks, res.stack)
		}
	}
	return stacks
}
