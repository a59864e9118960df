// Package pipeline provides the core allocation pipeline for stowage.
//
// This package implements the complete classify → segment → resolve → fill
// pipeline that turns an item catalog and an ordered request stream into a
// sequence of filled inventories with audit logs. By centralizing this logic,
// the CLI, the report renderers, and the interactive browser all share one
// behavior.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Segment: split the classified line stream on inventory markers
//  2. Allocate: build one capacity-bounded inventory per marker
//  3. Resolve: turn each segment's stack requests into concrete stacks
//  4. Fill: decide store/discard per stack and record one audit entry each
//
// Stages 1–3 are pure functions of their input. Stage 4 mutates one
// inventory at a time, strictly in request order, so the whole run is
// deterministic: identical input always yields identical output.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    CatalogPath:  "items.txt",
//	    RequestsPath: "requests.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, filled := range result.Inventories {
//	    ...
//	}
//
// Or run the orchestrator on already-materialized inputs:
//
//	filled := pipeline.Process(lines, cat, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/stowage-dev/stowage/pkg/catalog"
	"github.com/stowage-dev/stowage/pkg/errors"
	"github.com/stowage-dev/stowage/pkg/inventory"
	"github.com/stowage-dev/stowage/pkg/lines"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Report Renderers
// =============================================================================

// Format constants for report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFormat is the default report format.
const DefaultFormat = FormatText

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the allocation pipeline.
// This struct supports JSON serialization so a run can be replayed.
type Options struct {
	// Input options
	CatalogPath   string `json:"catalog_path,omitempty"`
	CatalogFormat string `json:"catalog_format,omitempty"` // auto (default), text, toml
	RequestsPath  string `json:"requests_path,omitempty"`

	// Allocation options
	Weighted      bool `json:"weighted,omitempty"`       // size = quantity × item weight
	LogUnresolved bool `json:"log_unresolved,omitempty"` // surface unresolved requests in the audit log

	// Report options
	Format string `json:"format,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger     `json:"-"`
	Sizer  inventory.Sizer `json:"-"` // overrides Weighted when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and JSON reports.
	RunID string

	// Catalog is the loaded item registry.
	Catalog *catalog.Catalog

	// Lines is the classified request stream, in input order.
	Lines []lines.Line

	// Inventories holds one (audit log, inventory) pair per marker,
	// in marker order.
	Inventories []Filled

	// Stats contains counts and timing information.
	Stats Stats
}

// Filled pairs one inventory with its ordered audit log.
type Filled struct {
	// Log holds one entry per resolved stack, in request order.
	Log []Entry

	// Inventory is the container after every decision was made.
	Inventory *inventory.Inventory
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LineCount       int
	InventoryCount  int
	StoredCount     int
	DiscardedCount  int
	UnresolvedCount int

	CatalogTime  time.Duration
	ClassifyTime time.Duration
	FillTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a report format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateInputPath(o.CatalogPath); err != nil {
		return err
	}
	if err := errors.ValidateInputPath(o.RequestsPath); err != nil {
		return err
	}
	o.SetDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults applies defaults without validating input paths, for callers
// that supply materialized lines instead of files.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.CatalogFormat == "" {
		o.CatalogFormat = catalog.FormatAuto
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// sizer returns the effective size policy: an explicit Sizer wins, then
// the Weighted flag, then the unit policy.
func (o *Options) sizer() inventory.Sizer {
	if o.Sizer != nil {
		return o.Sizer
	}
	if o.Weighted {
		return inventory.WeightedSizer
	}
	return inventory.UnitSizer
}
