// Package pkg provides the core libraries for Stowage capacity allocation.
//
// # Overview
//
// Stowage reads an item catalog and a free-form request stream, splits the
// stream into per-inventory segments, and fills each inventory with an
// all-or-nothing capacity check, producing a complete audit log of what was
// stored and what was discarded. The pkg directory is organized into:
//
//  1. [catalog] - Item definitions and catalog file loading (text and TOML)
//  2. [lines] - Request stream classification (markers, stack requests, noise)
//  3. [inventory] - Capacity-bounded inventories and stack sizing
//  4. [pipeline] - Orchestration (segment → allocate → resolve → fill)
//  5. [report] - Result rendering (text, styled, JSON, Graphviz DOT)
//
// # Architecture
//
// The typical data flow through Stowage:
//
//	Catalog file + Request stream
//	         ↓
//	    [lines] package (classify each line)
//	         ↓
//	    [pipeline] package (segment on markers, resolve against catalog)
//	         ↓
//	    [inventory] package (atomic capacity checks, audit entries)
//	         ↓
//	    Text/JSON/SVG/PNG output
//
// # Quick Start
//
// Run the full pipeline and print the report:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/stowage-dev/stowage/pkg/pipeline"
//	    "github.com/stowage-dev/stowage/pkg/report"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    CatalogPath:  "items.txt",
//	    RequestsPath: "requests.txt",
//	})
//	if err != nil {
//	    // handle error
//	}
//	report.WriteText(os.Stdout, result)
//
// # Main Packages
//
// [catalog] - Ordered item catalogs with first-match lookup by ID. Supports
// plain text catalogs ("<id> <name>" lines) and TOML catalogs that can carry
// per-item weights.
//
// [lines] - Line classification for the request stream. Every input line
// becomes exactly one Line: an inventory marker, a stack request, or noise
// that is preserved but never allocated.
//
// [inventory] - The allocation core. An Inventory accepts a Stack only when
// the whole stack fits; there are no partial fills and no retries. Sizers
// decide how much capacity a stack consumes (unit or weighted).
//
// [pipeline] - Orchestrates a run: segments the stream on markers, discards
// the preamble before the first marker, resolves requests against the
// catalog, and fills each inventory in stream order. Produces a Result with
// per-inventory audit logs and run statistics.
//
// [report] - Renders a Result as plain text, ANSI-styled text, JSON, or a
// Graphviz DOT graph (with SVG and PNG rasterization).
//
// [errors] - Structured errors with machine-readable codes shared across the
// CLI and the pipeline.
//
// [observability] - Optional instrumentation hooks for pipeline stages and
// report rendering, with no-op defaults.
//
// [buildinfo] - Build metadata injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/pipeline  # Specific package
//	go test -run Example    # Examples only
//
// [catalog]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/catalog
// [lines]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/lines
// [inventory]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/inventory
// [pipeline]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/pipeline
// [report]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/report
// [errors]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/errors
// [observability]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/stowage-dev/stowage/pkg/buildinfo
package pkg
