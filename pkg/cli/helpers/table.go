package helpers

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteTable renders rows under headers as a borderless, left-aligned table.
func WriteTable(writer io.Writer, headers []string, rows [][]string) error {
	header := lipgloss.NewStyle().Bold(true).PaddingRight(3)
	cell := lipgloss.NewStyle().PaddingRight(3)

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(writer, tbl.Render())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}
