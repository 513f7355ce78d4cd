package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xansi "github.com/charmbracelet/x/ansi"
)

// Palette shared by every table.
var (
	colorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	colorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	styleHeader = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleBorder = lipgloss.NewStyle().Foreground(colorGray)
)

// maxCellWidth is the width past which cell text is cut with an ellipsis.
const maxCellWidth = 40

// renderTable writes rows under headers as a bordered table.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// cell truncates s to maxCellWidth terminal columns.
func cell(s string) string {
	return xansi.Truncate(s, maxCellWidth, "…")
}

// footer prints a dim count line under a table.
func footer(w io.Writer, n int, one, many string) {
	noun := many
	if n == 1 {
		noun = one
	}
	fmt.Fprintln(w, styleBorder.Render(fmt.Sprintf("%d %s", n, noun)))
}

func itoa(n int) string { return strconv.Itoa(n) }

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
