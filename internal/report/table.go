package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Helper functions for table formatting. Widths are terminal cells, not
// bytes, so non-ASCII lexemes stay aligned.
func calculateColumnWidths(headers []string, rows [][]string) []int {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = lipgloss.Width(header)
		for _, row := range rows {
			if i < len(row) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(row[i]))
			}
		}
	}
	return colWidths
}

func writeTableBorder(sb *strings.Builder, colWidths []int) {
	sb.WriteString("+")
	for _, width := range colWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeDataRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")
	for i, width := range colWidths {
		val := ""
		if i < len(row) {
			val = row[i]
		}
		sb.WriteString(" ")
		sb.WriteString(val)
		sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(val)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// formatTable renders headers and rows as a bordered ASCII table.
func formatTable(headers []string, rows [][]string) string {
	var sb strings.Builder
	colWidths := calculateColumnWidths(headers, rows)

	writeTableBorder(&sb, colWidths)
	writeDataRow(&sb, headers, colWidths)
	writeTableBorder(&sb, colWidths)

	for _, row := range rows {
		writeDataRow(&sb, row, colWidths)
	}

	writeTableBorder(&sb, colWidths)
	return sb.String()
}
