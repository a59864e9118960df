package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stowage-dev/stowage/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	entryStoredStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	entryDiscardedStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// tuiCommand creates the tui command for browsing filled inventories.
func (c *CLI) tuiCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "tui <items-file> <requests-file>",
		Short: "Browse filled inventories interactively",
		Long: `Browse filled inventories interactively.

Runs the pipeline, then opens a terminal browser: arrow keys (or j/k)
move between inventories, the right side shows the selected inventory's
audit log, q quits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CatalogPath = args[0]
			opts.RequestsPath = args[1]
			result, err := c.newRunner().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(result.Inventories) == 0 {
				printInfo("no inventories in %s", args[1])
				return nil
			}
			_, err = tea.NewProgram(newBrowserModel(result)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Weighted, "weighted", false, "size stacks as quantity × item weight")
	cmd.Flags().BoolVar(&opts.LogUnresolved, "unresolved", false, "show requests whose item id is unknown")

	return cmd
}

// =============================================================================
// browserModel - Interactive inventory browsing
// =============================================================================

// browserModel is the bubbletea model for stepping through inventories.
type browserModel struct {
	Result *pipeline.Result
	Cursor int
	Height int
	Offset int
}

// newBrowserModel creates a browser over the run's inventories.
func newBrowserModel(result *pipeline.Result) browserModel {
	return browserModel{
		Result: result,
		Height: 15,
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Result.Inventories)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Result.Inventories) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inventories"))
	b.WriteString("\n\n")

	list := m.renderList()
	detail := m.renderDetail()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", detail))

	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  ↑/↓ move · q quit", m.Cursor+1, len(m.Result.Inventories))))
	b.WriteString("\n")

	return b.String()
}

// renderList renders the scrolling inventory list (left pane).
func (m browserModel) renderList() string {
	var b strings.Builder
	end := min(m.Offset+m.Height, len(m.Result.Inventories))
	for i := m.Offset; i < end; i++ {
		inv := m.Result.Inventories[i].Inventory
		line := fmt.Sprintf("Inventory %d  %d/%d", i+1, inv.Occupied(), inv.Capacity())
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDetail renders the selected inventory's audit log (right pane).
func (m browserModel) renderDetail() string {
	filled := m.Result.Inventories[m.Cursor]
	if len(filled.Log) == 0 {
		return listDimStyle.Render("(no requests)")
	}

	var b strings.Builder
	for i, entry := range filled.Log {
		style := listDimStyle
		switch entry.Label {
		case pipeline.LabelStored:
			style = entryStoredStyle
		case pipeline.LabelDiscarded:
			style = entryDiscardedStyle
		}
		b.WriteString(style.Render(entry.String()))
		if i < len(filled.Log)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
