package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"govreg/internal/table"
	"govreg/pkg/logging"
)

// Update is the single message pump for the collection view.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case actionResultMsg:
		return m.handleActionResult(msg)

	case clearNoticeMsg:
		if msg.gen == m.noticeGen {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.handleSearchKey(msg)
		case modeFilter:
			return m.handleFilterKey(msg)
		case modeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleTableKey(msg)
		}
	}
	return m, nil
}

// handlePageLoaded commits a fetch result. Responses from superseded
// fetches are dropped, and a failed fetch leaves the previous page visible.
func (m model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		logging.Debug("TUI", "Dropping stale page load (seq %d, latest %d)", msg.seq, m.seq)
		return m, nil
	}
	m.loading = false

	if msg.err != nil {
		logging.Error("TUI", msg.err, "Failed to load %s page %d", m.col.Key(), msg.state.Page)
		m.loadErr = msg.err
		return m.setNotice(fmt.Sprintf("Failed to load %ss: %v", m.col.ItemName(), msg.err), true)
	}

	m.loadErr = nil
	m.state = msg.state
	m.page = msg.page
	m.columns = m.col.Columns(msg.page.Cust)
	m.modals = buildModals(msg.page)
	m.window = table.BuildWindow(
		msg.page.Meta.Page,
		msg.page.Meta.NumPages,
		msg.page.Meta.HasPrevious,
		msg.page.Meta.HasNext,
	)

	if msg.state.ScrollOnLoad || m.cursor >= len(msg.page.Rows) {
		m.cursor = 0
	}
	if m.colCursor >= len(m.columns) {
		m.colCursor = 0
	}
	m.announce = fmt.Sprintf("%ss loaded, page %d of %d",
		titled(m.col.ItemName()), msg.page.Meta.Page, max(msg.page.Meta.NumPages, 1))
	return m, nil
}

// handleActionResult reports the outcome of a row action and, on success,
// reloads the page. Removing the last row of a page beyond the first lands
// on the previous page instead of an empty one.
func (m model) handleActionResult(msg actionResultMsg) (tea.Model, tea.Cmd) {
	m.actionInFlight = false

	if msg.err != nil {
		logging.Error("TUI", msg.err, "Action failed for %s %d", m.col.ItemName(), msg.id)
		return m.setNotice(fmt.Sprintf("Action failed: %v", msg.err), true)
	}
	if msg.result.Error != "" {
		logging.Warn("TUI", "Portal rejected action for %s %d: %s", m.col.ItemName(), msg.id, msg.result.Error)
		return m.setNotice(msg.result.Error, true)
	}

	next := m.state
	next.ScrollOnLoad = false
	if m.page != nil && len(m.page.Rows) == 1 && m.state.Page > 1 {
		next.Page = m.state.Page - 1
	}
	m.seq++
	m.loading = true
	fetch := fetchPageCmd(m.client, m.col, m.scope, next, m.seq)

	notice := msg.result.Success
	if notice == "" {
		notice = fmt.Sprintf("%s removed", titled(m.col.ItemName()))
	}
	updated, noticeCmd := m.setNotice(notice, false)
	return updated, tea.Batch(fetch, noticeCmd)
}

func (m model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.page != nil && m.cursor < len(m.page.Rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.colCursor < len(m.columns)-1 {
			m.colCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		if m.colCursor < len(m.columns) {
			if col := m.columns[m.colCursor]; col.SortKey != "" {
				cmd := m.dispatch(table.SetSort{Column: col.SortKey})
				return m, cmd
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.page != nil && m.page.Meta.HasNext {
			cmd := m.dispatch(table.GotoPage{Page: m.state.Page + 1})
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.page != nil && m.page.Meta.HasPrevious {
			cmd := m.dispatch(table.GotoPage{Page: m.state.Page - 1})
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.state.SearchTerm)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		if m.state.SearchTerm != "" {
			cmd := m.dispatch(table.ResetSearch{})
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.filterCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.ResetFilters):
		if m.state.FilterCount() > 0 {
			cmd := m.dispatch(table.ResetFilters{})
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Action):
		if row := m.currentRow(); row != nil && row.Actionable && !m.actionInFlight {
			if modal, ok := m.modals[row.ID]; ok {
				m.activeModal = &modal
				m.mode = modeConfirm
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		if row := m.currentRow(); row != nil {
			if err := clipboard.WriteAll(strings.Join(row.Cells, "\t")); err != nil {
				return m.setNotice(fmt.Sprintf("Copy failed: %v", err), true)
			}
			return m.setNotice("Row copied to clipboard", false)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeTable
		m.searchInput.Blur()
		cmd := m.dispatch(table.SubmitSearch{Term: m.searchInput.Value()})
		return m, cmd
	case tea.KeyEsc:
		m.mode = modeTable
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := m.statusChoices()
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Filter), key.Matches(msg, m.keys.Quit):
		m.mode = modeTable
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.filterCursor > 0 {
			m.filterCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.filterCursor < len(choices)-1 {
			m.filterCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.ResetFilters):
		m.mode = modeTable
		if m.state.FilterCount() > 0 {
			cmd := m.dispatch(table.ResetFilters{})
			return m, cmd
		}
		return m, nil

	case msg.Type == tea.KeyEnter, msg.Type == tea.KeySpace:
		if m.filterCursor < len(choices) {
			choice := choices[m.filterCursor]
			cmd := m.dispatch(table.ToggleStatus{
				Value:   choice.Value,
				Checked: !m.state.HasStatus(choice.Value),
			})
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		modal := m.activeModal
		m.activeModal = nil
		m.mode = modeTable
		if modal == nil {
			return m, nil
		}
		m.actionInFlight = true
		return m, submitActionCmd(m.client, modal.ID, modal.ActionURL)
	case tea.KeyEsc:
		m.activeModal = nil
		m.mode = modeTable
		return m, nil
	}
	return m, nil
}

// setNotice shows a transient status-bar message and schedules its expiry.
func (m model) setNotice(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = isErr
	m.noticeGen++
	return m, clearNoticeCmd(m.noticeGen)
}

func (m *model) currentRow() *Row {
	if m.page == nil || m.cursor < 0 || m.cursor >= len(m.page.Rows) {
		return nil
	}
	return &m.page.Rows[m.cursor]
}

// titled capitalizes the first letter of an item name for display.
func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
