package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"govreg/internal/portal"
	"govreg/internal/table"
)

// model is the Bubble Tea model for one collection view.
type model struct {
	client *portal.Client
	col    Collection
	scope  table.Scope

	// state is the committed table state. Candidate states travel inside
	// fetch commands and are committed only when the fetch succeeds.
	state table.State

	// seq numbers outgoing fetches; responses carrying an older seq are
	// dropped so a slow page 2 can never overwrite a requested page 3.
	seq int

	page    *Page
	columns []Column
	window  []table.Link
	modals  map[int64]confirmModal

	mode           browseMode
	activeModal    *confirmModal
	actionInFlight bool
	loading        bool

	cursor       int // row cursor
	colCursor    int // column cursor, drives sorting
	filterCursor int // selection inside the filter panel

	searchInput textinput.Model
	spinner     spinner.Model
	help        help.Model
	keys        KeyMap

	notice    string
	noticeErr bool
	noticeGen int

	// announce mirrors what a screen reader would get: a short summary of
	// the last completed load, shown in the status bar.
	announce string

	loadErr error

	width  int
	height int
}

// InitialModel constructs the model for a collection. The initial state
// usually comes from table.Initial but may carry flag-provided values.
func InitialModel(client *portal.Client, col Collection, scope table.Scope, state table.State) model {
	ti := textinput.New()
	ti.Placeholder = col.SearchHint()
	ti.CharLimit = 120
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		client:      client,
		col:         col,
		scope:       scope,
		state:       state,
		seq:         1,
		modals:      map[int64]confirmModal{},
		mode:        modeTable,
		loading:     true,
		searchInput: ti,
		spinner:     s,
		help:        help.New(),
		keys:        DefaultKeyMap(),
	}
}

// Init kicks off the spinner and the first page load. The first fetch uses
// the seq the model was constructed with so its response is not dropped.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchPageCmd(m.client, m.col, m.scope, m.state, m.seq),
	)
}

// statusChoices prefers the server-provided choices and falls back to the
// collection's static set when the page carries none.
func (m *model) statusChoices() []portal.StatusChoice {
	if m.page != nil && len(m.page.StatusChoices) > 0 {
		return m.page.StatusChoices
	}
	return m.col.StatusChoices()
}

// dispatch issues a fetch for a candidate state and marks the view loading.
func (m *model) dispatch(a table.Action) tea.Cmd {
	next := table.Reduce(m.state, a)
	m.seq++
	m.loading = true
	return fetchPageCmd(m.client, m.col, m.scope, next, m.seq)
}

// Run starts the Bubble Tea program for a collection view.
func Run(client *portal.Client, col Collection, scope table.Scope, state table.State) error {
	p := tea.NewProgram(InitialModel(client, col, scope, state), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
