package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/rpnsheet/sheet"
)

// Render draws results as a bordered terminal table with column letters
// across the top and row numbers down the side. Colors are used only when w
// is a terminal that supports them.
func Render(w io.Writer, results sheet.ResultGrid, marker string) error {
	_, err := fmt.Fprintln(w, NewTable(lipgloss.NewRenderer(w), results, marker))

	return err
}

// NewTable builds the table drawn by [Render] using the styles of r.
func NewTable(
	r *lipgloss.Renderer,
	results sheet.ResultGrid,
	marker string,
) *table.Table {
	cols := 0
	for _, row := range results {
		cols = max(cols, len(row))
	}

	headers := make([]string, cols+1)
	for c := range cols {
		headers[c+1] = sheet.FormatColumn(c)
	}

	rows := make([][]string, len(results))
	for i, row := range results {
		rows[i] = make([]string, cols+1)
		rows[i][0] = strconv.Itoa(i + 1)

		for j, res := range row {
			rows[i][j+1] = res.Text(marker)
		}
	}

	var (
		cell   = r.NewStyle().Padding(0, 1)
		label  = cell.Foreground(lipgloss.Color("8"))
		header = label.Bold(true)
		number = cell.Align(lipgloss.Right)
		failed = number.Foreground(lipgloss.Color("1"))
	)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return label
			case row < len(results) && col-1 < len(results[row]) &&
				results[row][col-1].IsError():
				return failed
			default:
				return number
			}
		})
}
