package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stowage-dev/stowage/pkg/errors"
	"github.com/stowage-dev/stowage/pkg/pipeline"
	"github.com/stowage-dev/stowage/pkg/report"
)

// Visualization output formats.
const (
	vizDOT = "dot"
	vizSVG = "svg"
	vizPNG = "png"
)

// visualizeCommand creates the visualize command for rendering a run as a
// graph.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		format string
		output string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize <items-file> <requests-file>",
		Short: "Render a run as a DOT, SVG, or PNG graph",
		Long: `Render a run as a DOT, SVG, or PNG graph.

Each inventory becomes a node labeled with its final occupancy; every
store/discard decision hangs off it as a leaf. Stored stacks render solid,
discarded ones dashed.

Examples:
  stowage visualize items.txt requests.txt
  stowage visualize items.txt requests.txt -f svg -o run.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CatalogPath = args[0]
			opts.RequestsPath = args[1]
			return c.runVisualize(cmd.Context(), opts, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", vizDOT, "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.Weighted, "weighted", false, "size stacks as quantity × item weight")
	cmd.Flags().BoolVar(&opts.LogUnresolved, "unresolved", false, "include requests whose item id is unknown")

	return cmd
}

// runVisualize executes the pipeline and renders the requested artifact.
func (c *CLI) runVisualize(ctx context.Context, opts pipeline.Options, format, output string) error {
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	dot := report.ToDOT(result)

	var data []byte
	switch strings.ToLower(format) {
	case vizDOT:
		data = []byte(dot)
	case vizSVG, vizPNG:
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
		spinner.Start()
		if format == vizSVG {
			data, err = report.RenderSVG(dot)
		} else {
			data, err = report.RenderPNG(dot)
		}
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg, png)", format)
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Rendered %s", format)
		printFile(output)
	}
	return nil
}
