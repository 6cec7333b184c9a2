package tui

// browseMode identifies which input surface currently owns keystrokes.
type browseMode int

const (
	// modeTable is the default mode: keys navigate and drive the table.
	modeTable browseMode = iota
	// modeSearch routes keys into the search input until enter or esc.
	modeSearch
	// modeFilter shows the status filter panel.
	modeFilter
	// modeConfirm shows a destructive-action confirmation modal.
	modeConfirm
)

func (m browseMode) String() string {
	switch m {
	case modeTable:
		return "table"
	case modeSearch:
		return "search"
	case modeFilter:
		return "filter"
	case modeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}
