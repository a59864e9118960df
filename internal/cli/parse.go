package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stowage-dev/stowage/pkg/lines"
)

// parseCommand creates the parse command for inspecting classified lines.
func (c *CLI) parseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <requests-file>",
		Short: "Classify a request file and emit the line stream as JSON",
		Long: `Classify a request file and emit the line stream as JSON.

Every line of the file becomes one record: an inventory marker, a stack
request, or "other" (comments, blank lines, unparseable text). The output
preserves the input order exactly, which is what the allocation pipeline
consumes.

Examples:
  stowage parse requests.txt
  stowage parse requests.txt -o lines.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse classifies the file and writes the records as indented JSON.
func (c *CLI) runParse(path, output string) error {
	prog := newProgress(c.Logger)
	ls, err := lines.ReadFile(path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Classified %d lines", len(ls)))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ls); err != nil {
		return err
	}
	if output != "" {
		printFile(output)
	}
	return nil
}
