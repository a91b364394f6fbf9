package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/ui/style"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a non-focused Bubbles table with the halo styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(style.ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(style.ColorPrimary)
	s.Cell = s.Cell.Foreground(style.ColorPrimary)
	// Not focused, so nothing should look selected.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// maxPreviewFrames caps how many frames the preset table shows per row.
const maxPreviewFrames = 8

// RenderPresetTable lists frame sets with their interval and first frames.
func RenderPresetTable(sets []frames.Set) string {
	if len(sets) == 0 {
		return "No spinners available"
	}

	rows := make([][]string, 0, len(sets))
	for _, set := range sets {
		rows = append(rows, []string{set.Name, fmt.Sprintf("%dms", set.Interval.Milliseconds()), framePreview(set)})
	}

	return RenderSimpleTable([]TableColumn{
		{Title: "NAME", Width: 20},
		{Title: "INTERVAL", Width: 9},
		{Title: "FRAMES", Width: 44},
	}, rows)
}

func framePreview(set frames.Set) string {
	shown := set.Frames
	more := ""
	if len(shown) > maxPreviewFrames {
		shown = shown[:maxPreviewFrames]
		more = fmt.Sprintf(" +%d", len(set.Frames)-maxPreviewFrames)
	}
	return strings.Join(shown, " ") + more
}
