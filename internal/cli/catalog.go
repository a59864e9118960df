package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/stowage-dev/stowage/pkg/catalog"
)

// catalogCommand creates the catalog command for printing an item catalog.
func (c *CLI) catalogCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog <items-file>",
		Short: "Print an item catalog as a table",
		Long: `Print an item catalog as a table.

Accepts the plain text format ("<id> <name>" per line) or TOML ([[item]]
tables, detected by the .toml extension). Entries are listed in file order,
which is also the lookup order when identifiers collide.

Examples:
  stowage catalog items.txt
  stowage catalog items.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCatalog(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "catalog format: auto (by extension), text, toml")

	return cmd
}

// runCatalog loads the catalog and renders it.
func (c *CLI) runCatalog(path, format string) error {
	cat, err := catalog.LoadFileAs(path, format, c.Logger.Debugf)
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	weighted := cat.Weighted()

	headers := []string{"ID", "Name"}
	if weighted {
		headers = append(headers, "Weight")
	}

	var rows [][]string
	for _, item := range cat.Items() {
		row := []string{strconv.Itoa(item.ID), item.Name}
		if weighted {
			row = append(row, strconv.Itoa(item.Weight))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	printInfo("%d items", cat.Len())
	return nil
}
