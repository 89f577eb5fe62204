// Package render prints tableau rows as a boxed text table for diagnostics.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"q.log/exactsimplex/model"
)

// Table writes a boxed table: an optional header, the body rows, then an
// optional footer row under its own rule. Short rows are padded with blank
// cells.
func Table(w io.Writer, header []string, rows [][]string, footer []string) error {
	cols := max(len(header), len(footer))
	for _, r := range rows {
		cols = max(cols, len(r))
	}

	var b strings.Builder
	tw := tablewriter.NewWriter(&b)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetFooterAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	if len(header) > 0 {
		tw.SetHeader(fill(header, cols))
	}
	for _, r := range rows {
		tw.Append(fill(r, cols))
	}
	if len(footer) > 0 {
		tw.SetFooter(fill(footer, cols))
	}
	tw.Render()

	_, err := io.WriteString(w, b.String())
	return err
}

func fill(cells []string, n int) []string {
	out := make([]string, n)
	copy(out, cells)
	return out
}

// Tableau writes every constraint row, then the objective row as the footer.
// The header names columns x1..xn, marks basic columns with '*', and calls
// the constant column "-z".
func Tableau(w io.Writer, t *model.Tableau) error {
	header := make([]string, 0, t.Width()+1)
	basic := make(map[int]bool, len(t.Basis))
	for _, col := range t.Basis {
		basic[col] = true
	}
	for j := 0; j < t.Width(); j++ {
		name := fmt.Sprintf("x%d", j+1)
		if basic[j] {
			name += "*"
		}
		header = append(header, name)
	}
	header = append(header, "-z")

	rows := make([][]string, 0, len(t.Rows))
	for i := range t.Rows {
		rows = append(rows, t.Rows[i].Printable())
	}
	return Table(w, header, rows, t.Objective.Printable())
}
