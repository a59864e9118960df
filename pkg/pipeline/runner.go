package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/stowage-dev/stowage/pkg/catalog"
	"github.com/stowage-dev/stowage/pkg/errors"
	"github.com/stowage-dev/stowage/pkg/lines"
	"github.com/stowage-dev/stowage/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options; each run processes its inventories strictly
// sequentially.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → classify → fill pipeline.
//
// Fatal input errors (unreadable files, malformed TOML catalogs) surface
// here, before any allocation happens. The allocation stages themselves
// have no recoverable-error channel: unresolved requests are dropped and
// capacity misses are normal Discarded outcomes.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Catalog
	catalogStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.CatalogPath)
	cat, err := catalog.LoadFileAs(opts.CatalogPath, opts.CatalogFormat, opts.Logger.Debugf)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.CatalogPath, 0, time.Since(catalogStart), err)
		return nil, err
	}
	result.Catalog = cat
	result.Stats.CatalogTime = time.Since(catalogStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.CatalogPath, cat.Len(), result.Stats.CatalogTime, nil)

	r.Logger.Info("loaded catalog",
		"run", result.RunID,
		"items", cat.Len(),
		"duration", result.Stats.CatalogTime)

	// Stage 2: Classify
	classifyStart := time.Now()
	observability.Pipeline().OnClassifyStart(ctx, opts.RequestsPath)
	ls, err := lines.ReadFile(opts.RequestsPath)
	if err != nil {
		observability.Pipeline().OnClassifyComplete(ctx, opts.RequestsPath, 0, time.Since(classifyStart), err)
		return nil, err
	}
	result.Lines = ls
	result.Stats.ClassifyTime = time.Since(classifyStart)
	result.Stats.LineCount = len(ls)
	observability.Pipeline().OnClassifyComplete(ctx, opts.RequestsPath, len(ls), result.Stats.ClassifyTime, nil)

	r.Logger.Info("classified requests",
		"lines", len(ls),
		"duration", result.Stats.ClassifyTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Fill
	fillStart := time.Now()
	observability.Pipeline().OnFillStart(ctx, len(Segment(ls))-1)
	result.Inventories = Process(ls, cat, opts)
	result.Stats.FillTime = time.Since(fillStart)
	result.Stats.InventoryCount = len(result.Inventories)
	result.Stats.StoredCount, result.Stats.DiscardedCount, result.Stats.UnresolvedCount = tally(result.Inventories)
	observability.Pipeline().OnFillComplete(ctx, result.Stats.StoredCount, result.Stats.DiscardedCount, result.Stats.FillTime)

	r.Logger.Info("filled inventories",
		"inventories", result.Stats.InventoryCount,
		"stored", result.Stats.StoredCount,
		"discarded", result.Stats.DiscardedCount,
		"duration", result.Stats.FillTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
