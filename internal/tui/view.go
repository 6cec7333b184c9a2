package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"govreg/internal/portal"
	"govreg/internal/table"
)

// View renders the whole collection screen.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch {
	case m.loading && m.page == nil:
		b.WriteString(m.spinner.View() + " Loading " + m.col.ItemName() + "s...")
	case m.page == nil && m.loadErr != nil:
		b.WriteString(errorNoticeStyle.Render(fmt.Sprintf("Could not load %ss: %v", m.col.ItemName(), m.loadErr)))
	case m.page != nil:
		b.WriteString(m.renderContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	base := appStyle.Render(b.String())

	switch m.mode {
	case modeFilter:
		return m.overlay(base, m.renderFilterPanel())
	case modeConfirm:
		return m.overlay(base, m.renderModal())
	}
	return base
}

func (m model) renderTitle() string {
	title := titleStyle.Render(m.col.Title())
	if n := m.state.FilterCount(); n > 0 {
		title += " " + filterBadgeStyle.Render(fmt.Sprintf("%d filters", n))
	}
	if m.loading && m.page != nil {
		title += " " + m.spinner.View()
	}
	return title
}

// renderContent renders the counter, the table or its placeholder, and the
// pagination bar.
func (m model) renderContent() string {
	meta := m.page.Meta
	var parts []string

	if meta.Total >= 1 {
		parts = append(parts, counterStyle.Render(
			table.CounterText(meta.Total, m.col.ItemName(), m.state.SearchTerm)))
	}

	switch table.ModeFor(meta.Total, meta.UnfilteredTotal) {
	case table.ShowNoData:
		parts = append(parts, placeholderStyle.Render(
			fmt.Sprintf("You don't have any %ss yet.", m.col.ItemName())))
	case table.ShowNoMatches:
		parts = append(parts, placeholderStyle.Render(
			fmt.Sprintf("No %ss match your search.", m.col.ItemName())))
	default:
		parts = append(parts, m.renderTable())
	}

	if meta.NumPages > 1 {
		parts = append(parts, "", m.renderPagination())
	}
	return strings.Join(parts, "\n")
}

func (m model) renderTable() string {
	widths := m.columnWidths()

	var header strings.Builder
	for i, col := range m.columns {
		label := col.Title
		if col.SortKey != "" && col.SortKey == m.state.SortBy {
			if m.state.Order == portal.OrderAsc {
				label += " ▲"
			} else {
				label += " ▼"
			}
		}
		cell := runewidth.FillRight(runewidth.Truncate(label, widths[i], "…"), widths[i])
		if i == m.colCursor {
			cell = headerCursorStyle.Render(cell)
		}
		header.WriteString(cell)
		if i < len(m.columns)-1 {
			header.WriteString("  ")
		}
	}

	lines := []string{headerRowStyle.Render(header.String())}
	for r, row := range m.page.Rows {
		var line strings.Builder
		for i := range m.columns {
			cell := ""
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			line.WriteString(runewidth.FillRight(runewidth.Truncate(cell, widths[i], "…"), widths[i]))
			if i < len(m.columns)-1 {
				line.WriteString("  ")
			}
		}
		rendered := line.String()
		if r == m.cursor {
			rendered = selectedRowStyle.Render(rendered)
		}
		lines = append(lines, rendered)
	}
	return strings.Join(lines, "\n")
}

// columnWidths sizes each column to its widest cell, bounded below by the
// column's minimum width.
func (m model) columnWidths() []int {
	widths := make([]int, len(m.columns))
	for i, col := range m.columns {
		widths[i] = runewidth.StringWidth(col.Title) + 2 // room for the sort arrow
		if widths[i] < col.MinWidth {
			widths[i] = col.MinWidth
		}
	}
	for _, row := range m.page.Rows {
		for i := range m.columns {
			if i >= len(row.Cells) {
				continue
			}
			if w := runewidth.StringWidth(row.Cells[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (m model) renderPagination() string {
	var parts []string
	for _, link := range m.window {
		switch link.Kind {
		case table.LinkPrevious:
			parts = append(parts, pageLinkStyle.Render("‹ prev"))
		case table.LinkNext:
			parts = append(parts, pageLinkStyle.Render("next ›"))
		case table.LinkEllipsis:
			parts = append(parts, ellipsisStyle.Render("…"))
		case table.LinkPage:
			label := fmt.Sprintf("%d", link.Page)
			if link.Current {
				parts = append(parts, currentPageStyle.Render(label))
			} else {
				parts = append(parts, pageLinkStyle.Render(label))
			}
		}
	}
	return strings.Join(parts, "")
}

func (m model) renderStatusBar() string {
	switch {
	case m.notice != "" && m.noticeErr:
		return errorNoticeStyle.Render(m.notice)
	case m.notice != "":
		return noticeStyle.Render(m.notice)
	case m.mode == modeSearch:
		return "Search: " + m.searchInput.View()
	case m.actionInFlight:
		return m.spinner.View() + " Submitting..."
	default:
		return counterStyle.Render(m.announce)
	}
}

func (m model) renderFilterPanel() string {
	choices := m.statusChoices()
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Filter by status"))
	b.WriteString("\n\n")
	for i, choice := range choices {
		mark := "[ ]"
		if m.state.HasStatus(choice.Value) {
			mark = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", mark, choice.Label)
		if i == m.filterCursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + counterStyle.Render("enter toggle · F reset · esc close"))
	return overlayStyle.Render(b.String())
}

func (m model) renderModal() string {
	if m.activeModal == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(m.activeModal.Title))
	b.WriteString("\n\n")
	b.WriteString(m.activeModal.Body)
	b.WriteString("\n\n")
	b.WriteString(counterStyle.Render(fmt.Sprintf("enter %s · esc cancel", strings.ToLower(m.activeModal.ActionLabel))))
	return overlayStyle.Render(b.String())
}

// overlay centers a panel over the base view. Terminal cells cannot truly
// stack, so the panel replaces the base when the size is unknown.
func (m model) overlay(base, panel string) string {
	if m.width == 0 || m.height == 0 {
		return panel
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
