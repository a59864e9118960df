package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stowage-dev/stowage/pkg/pipeline"
	"github.com/stowage-dev/stowage/pkg/report"
)

// runCommand creates the run command, the full pipeline entry point.
func (c *CLI) runCommand() *cobra.Command {
	var (
		output string
		plain  bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "run <items-file> <requests-file>",
		Short: "Fill inventories from a request file and print the report",
		Long: `Fill inventories from a request file and print the report.

The items file declares the catalog, one "<id> <name>" item per line, or as
TOML with [[item]] tables (detected by the .toml extension). The requests
file is processed in order: each "inventory <capacity>" line starts a new
inventory, each "<item_id> <quantity>" line asks to store a stack in the
most recent one. A stack is stored whole or discarded whole; discarded
stacks are never retried.

The report lists every decision, the catalog, and each inventory's final
contents.

Examples:
  stowage run items.txt requests.txt
  stowage run items.toml requests.txt --weighted
  stowage run items.txt requests.txt --format json -o report.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CatalogPath = args[0]
			opts.RequestsPath = args[1]
			if err := pipeline.ValidateFormat(orDefault(opts.Format)); err != nil {
				return err
			}
			return c.runPipeline(cmd.Context(), opts, output, plain)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "report format: text (default), json")
	cmd.Flags().StringVar(&opts.CatalogFormat, "catalog-format", "auto", "catalog format: auto (by extension), text, toml")
	cmd.Flags().BoolVar(&opts.Weighted, "weighted", false, "size stacks as quantity × item weight")
	cmd.Flags().BoolVar(&opts.LogUnresolved, "unresolved", false, "log requests whose item id is unknown")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colored output")

	return cmd
}

// runPipeline executes the pipeline and writes the report.
func (c *CLI) runPipeline(ctx context.Context, opts pipeline.Options, output string, plain bool) error {
	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Filled %d inventories", len(result.Inventories)))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch orDefault(opts.Format) {
	case pipeline.FormatJSON:
		err = report.WriteJSON(out, result)
	default:
		if output == "" && !plain {
			err = report.WriteStyled(out, result)
		} else {
			err = report.WriteText(out, result)
		}
	}
	if err != nil {
		return err
	}

	if output != "" {
		printFile(output)
	}
	printStats(result.Stats.InventoryCount, result.Stats.StoredCount, result.Stats.DiscardedCount)
	return nil
}

// orDefault substitutes the default report format for an empty string.
func orDefault(format string) string {
	if format == "" {
		return pipeline.DefaultFormat
	}
	return format
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
