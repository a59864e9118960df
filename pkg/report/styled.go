package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/stowage-dev/stowage/pkg/pipeline"
)

var (
	styleSection   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleStored    = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleDiscarded = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleMuted     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleValue     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

// entryStyle picks the color for one audit entry label.
func entryStyle(label string) lipgloss.Style {
	switch label {
	case pipeline.LabelStored:
		return styleStored
	case pipeline.LabelDiscarded:
		return styleDiscarded
	default:
		return styleMuted
	}
}

// WriteStyled writes the three-section report with terminal colors:
// stored entries green, discarded red, unresolved dimmed. Layout matches
// [WriteText] so the two stay interchangeable.
func WriteStyled(w io.Writer, result *pipeline.Result) error {
	fmt.Fprintln(w, styleSection.Render("Processing Log:"))
	for _, filled := range result.Inventories {
		for _, entry := range filled.Log {
			fmt.Fprintln(w, entryStyle(entry.Label).Render(entry.String()))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleSection.Render("Item List:"))
	for _, item := range result.Catalog.Items() {
		fmt.Fprintf(w, "  %s %s\n",
			styleMuted.Render(fmt.Sprintf("%2d", item.ID)),
			styleValue.Render(item.Name))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleSection.Render("Storage Summary:"))
	for _, filled := range result.Inventories {
		fmt.Fprintln(w, filled.Inventory)
	}
	return nil
}
