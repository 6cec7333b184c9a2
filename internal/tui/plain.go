package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"govreg/internal/table"
)

// RenderPlain writes one page as an uncolored text table. It is the output
// path for piped output and for --no-tui.
func RenderPlain(w io.Writer, col Collection, page *Page, searchTerm string) {
	meta := page.Meta

	switch table.ModeFor(meta.Total, meta.UnfilteredTotal) {
	case table.ShowNoData:
		fmt.Fprintf(w, "You don't have any %ss yet.\n", col.ItemName())
		return
	case table.ShowNoMatches:
		fmt.Fprintf(w, "No %ss match your search.\n", col.ItemName())
		return
	}

	fmt.Fprintln(w, table.CounterText(meta.Total, col.ItemName(), searchTerm))
	fmt.Fprintln(w)

	cols := col.Columns(page.Cust)
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.Title)
		if widths[i] < c.MinWidth {
			widths[i] = c.MinWidth
		}
	}
	for _, row := range page.Rows {
		for i := range cols {
			if i >= len(row.Cells) {
				continue
			}
			if cw := runewidth.StringWidth(row.Cells[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeLine := func(cells []string) {
		parts := make([]string, len(cols))
		for i := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	writeLine(titles)
	for _, row := range page.Rows {
		writeLine(row.Cells)
	}

	if meta.NumPages > 1 {
		fmt.Fprintf(w, "\nPage %d of %d\n", meta.Page, meta.NumPages)
	}
}
