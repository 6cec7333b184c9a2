package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govreg/internal/portal"
	"govreg/internal/table"
)

// stubCollection records the last query so tests can inspect what a
// dispatched fetch would ask the portal for.
type stubCollection struct {
	lastQuery portal.Query
	page      *Page
}

func (s *stubCollection) Key() string        { return "stub" }
func (s *stubCollection) Title() string      { return "Stubs" }
func (s *stubCollection) ItemName() string   { return "stub" }
func (s *stubCollection) SearchHint() string { return "Search stubs" }

func (s *stubCollection) Columns(Customization) []Column {
	return []Column{
		{Title: "Name", SortKey: "name", MinWidth: 4},
		{Title: "Status", SortKey: "status", MinWidth: 6},
	}
}

func (s *stubCollection) StatusChoices() []portal.StatusChoice {
	return []portal.StatusChoice{{Value: "ready", Label: "Ready"}}
}

func (s *stubCollection) FetchPage(_ context.Context, _ *portal.Client, q portal.Query) (*Page, error) {
	s.lastQuery = q
	return s.page, nil
}

func pageWithRows(rows ...Row) *Page {
	return &Page{
		Meta: portal.PageMeta{
			Page:            1,
			NumPages:        1,
			Total:           len(rows),
			UnfilteredTotal: len(rows),
		},
		Rows: rows,
	}
}

func loadedModel(t *testing.T, col Collection, page *Page, state table.State) model {
	t.Helper()
	m := InitialModel(nil, col, table.Scope{}, table.Initial())
	updated, _ := m.Update(pageLoadedMsg{seq: m.seq, state: state, page: page})
	loaded, ok := updated.(model)
	require.True(t, ok)
	return loaded
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStalePageLoadIsDropped(t *testing.T) {
	col := &stubCollection{}
	m := loadedModel(t, col, pageWithRows(Row{ID: 1, Cells: []string{"a", "ok"}}), table.Initial())

	staleState := table.Initial()
	staleState.Page = 7
	updated, _ := m.Update(pageLoadedMsg{
		seq:   m.seq - 1,
		state: staleState,
		page:  pageWithRows(),
	})
	got := updated.(model)

	assert.Equal(t, 1, got.state.Page, "stale response must not commit its state")
	require.NotNil(t, got.page)
	assert.Len(t, got.page.Rows, 1)
}

func TestPageLoadCommitsStateModalsAndWindow(t *testing.T) {
	col := &stubCollection{}
	page := pageWithRows(
		Row{ID: 4, Cells: []string{"a", "ok"}},
		Row{ID: 9, Cells: []string{"b", "ok"}, Actionable: true, ActionURL: "/del/9", ActionLabel: "Delete", ModalTitle: "Delete b?"},
	)
	page.Meta.Page = 2
	page.Meta.NumPages = 3
	page.Meta.HasPrevious = true
	page.Meta.HasNext = true

	state := table.Initial()
	state.Page = 2
	m := loadedModel(t, col, page, state)

	assert.Equal(t, 2, m.state.Page)
	assert.False(t, m.loading)
	require.Contains(t, m.modals, int64(9))
	assert.Equal(t, "/del/9", m.modals[9].ActionURL)
	assert.NotContains(t, m.modals, int64(4))
	assert.NotEmpty(t, m.window)
}

func TestModalsRebuiltOnEachLoad(t *testing.T) {
	col := &stubCollection{}
	first := pageWithRows(Row{ID: 1, Cells: []string{"a", "ok"}, Actionable: true, ActionURL: "/del/1"})
	m := loadedModel(t, col, first, table.Initial())
	require.Contains(t, m.modals, int64(1))

	second := pageWithRows(Row{ID: 2, Cells: []string{"b", "ok"}, Actionable: true, ActionURL: "/del/2"})
	updated, _ := m.Update(pageLoadedMsg{seq: m.seq, state: m.state, page: second})
	m = updated.(model)

	assert.NotContains(t, m.modals, int64(1), "modals from a previous page must not survive a load")
	assert.Contains(t, m.modals, int64(2))
}

func TestPageLoadErrorKeepsPreviousPage(t *testing.T) {
	col := &stubCollection{}
	m := loadedModel(t, col, pageWithRows(Row{ID: 1, Cells: []string{"a", "ok"}}), table.Initial())

	badState := table.Initial()
	badState.Page = 3
	updated, _ := m.Update(pageLoadedMsg{seq: m.seq, state: badState, err: assert.AnError})
	got := updated.(model)

	assert.Equal(t, 1, got.state.Page, "failed load must not commit its state")
	require.NotNil(t, got.page)
	assert.Len(t, got.page.Rows, 1)
	assert.NotEmpty(t, got.notice)
	assert.True(t, got.noticeErr)
}

func TestScrollOnLoadResetsCursor(t *testing.T) {
	col := &stubCollection{}
	page := pageWithRows(
		Row{ID: 1, Cells: []string{"a", "ok"}},
		Row{ID: 2, Cells: []string{"b", "ok"}},
		Row{ID: 3, Cells: []string{"c", "ok"}},
	)
	m := loadedModel(t, col, page, table.Initial())
	m.cursor = 2

	// Filter toggles reload without scrolling, so the cursor stays put.
	quiet := m.state
	quiet.ScrollOnLoad = false
	updated, _ := m.Update(pageLoadedMsg{seq: m.seq, state: quiet, page: page})
	m = updated.(model)
	assert.Equal(t, 2, m.cursor)

	// Page changes scroll, which lands the cursor on the first row.
	loud := m.state
	loud.ScrollOnLoad = true
	updated, _ = m.Update(pageLoadedMsg{seq: m.seq, state: loud, page: page})
	m = updated.(model)
	assert.Equal(t, 0, m.cursor)
}

func TestSortKeyDispatchesFetchForCursorColumn(t *testing.T) {
	col := &stubCollection{page: pageWithRows(Row{ID: 1, Cells: []string{"a", "ok"}})}
	m := loadedModel(t, col, col.page, table.Initial())
	m.colCursor = 1

	updated, cmd := m.Update(keyRune('s'))
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	cmd() // runs the fetch against the stub
	assert.Equal(t, []string{"status"}, col.lastQuery.Values()["sort_by"])
}

func TestActionSuccessOnLastRowOfLaterPageLoadsPreviousPage(t *testing.T) {
	col := &stubCollection{page: pageWithRows(Row{ID: 5, Cells: []string{"a", "ok"}})}
	page := pageWithRows(Row{ID: 5, Cells: []string{"a", "ok"}, Actionable: true, ActionURL: "/del/5"})
	page.Meta.Page = 3
	page.Meta.NumPages = 3
	page.Meta.HasPrevious = true

	state := table.Initial()
	state.Page = 3
	m := loadedModel(t, col, page, state)

	updated, cmd := m.Update(actionResultMsg{id: 5, result: &portal.ActionResult{Success: "deleted"}})
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.NotEmpty(t, m.notice)
	assert.False(t, m.noticeErr)

	// Run the batch just far enough to record the reload query; the
	// notice expiry tick is left alone.
	runUntilPageLoaded(t, cmd)
	assert.Equal(t, []string{"2"}, col.lastQuery.Values()["page"])
}

func TestActionFailureShowsErrorWithoutReload(t *testing.T) {
	col := &stubCollection{}
	m := loadedModel(t, col, pageWithRows(Row{ID: 5, Cells: []string{"a", "ok"}}), table.Initial())
	seqBefore := m.seq

	updated, _ := m.Update(actionResultMsg{id: 5, result: &portal.ActionResult{Error: "not allowed"}})
	m = updated.(model)

	assert.Equal(t, seqBefore, m.seq, "a rejected action must not trigger a reload")
	assert.Equal(t, "not allowed", m.notice)
	assert.True(t, m.noticeErr)
}

func TestFilterToggleResetsSortAndPage(t *testing.T) {
	col := &stubCollection{page: pageWithRows(Row{ID: 1, Cells: []string{"a", "ok"}})}
	state := table.Initial()
	state.Page = 4
	state.SortBy = "name"
	m := loadedModel(t, col, col.page, state)
	m.mode = modeFilter
	m.filterCursor = 0

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	require.NotNil(t, cmd)

	cmd()
	values := col.lastQuery.Values()
	assert.Equal(t, []string{"1"}, values["page"])
	assert.Equal(t, []string{"id"}, values["sort_by"])
	assert.Equal(t, []string{"ready"}, values["status"])
}

// runUntilPageLoaded executes commands from a batch until one yields a
// page load, so timer-backed commands after it never run.
func runUntilPageLoaded(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if _, ok := msg.(pageLoadedMsg); ok {
		return
	}
	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok, "expected a page load or a batch, got %T", msg)
	for _, c := range batch {
		if _, ok := c().(pageLoadedMsg); ok {
			return
		}
	}
	t.Fatal("no page load produced by command batch")
}
