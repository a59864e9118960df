// Package cli implements the stowage command-line interface.
//
// This package provides commands for running the allocation pipeline over
// an item catalog and a request file, inspecting the classified request
// stream, printing catalogs, and visualizing filled inventories. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Fill inventories and print the report
//   - parse: Classify a request file and emit it as JSON
//   - catalog: Print an item catalog as a table
//   - visualize: Render a run as DOT, SVG, or PNG
//   - tui: Browse filled inventories interactively
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stowage-dev/stowage/pkg/buildinfo"
	"github.com/stowage-dev/stowage/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "stowage"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stowage fills capacity-bounded inventories from request files",
		Long:         `Stowage is a CLI tool that simulates filling a sequence of capacity-bounded inventories with item stacks, driven by an item catalog and an ordered request file, and reports every store/discard decision.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
