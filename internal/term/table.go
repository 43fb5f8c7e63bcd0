package term

import (
	"fonsters/pkg/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	plain   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimmed  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	borders = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Table renders rows under headers with the first column highlighted.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borders).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return accent.Bold(true)
			case col == 0:
				return accent
			case col == 1:
				return dimmed
			}
			return plain
		})

	return t.Render()
}

// TraitTable renders snapshot as a group/trait/value table.
func TraitTable(snapshot core.ParameterSnapshot) string {
	var rows [][]string
	for _, g := range snapshot.Groups {
		for i, p := range g.Params {
			group := ""
			if i == 0 {
				group = g.Name
			}
			rows = append(rows, []string{group, p.Label, p.Value})
		}
	}
	return Table([]string{"Group", "Trait", "Value"}, rows)
}
