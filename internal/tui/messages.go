package tui

import (
	"govreg/internal/portal"
	"govreg/internal/table"
)

// pageLoadedMsg carries the outcome of a page fetch. The state field is the
// candidate table state the fetch was issued for; it is applied only when
// the fetch succeeds and its seq is still the latest one issued.
type pageLoadedMsg struct {
	seq   int
	state table.State
	page  *Page
	err   error
}

// actionResultMsg carries the outcome of a row action submission.
type actionResultMsg struct {
	id     int64
	result *portal.ActionResult
	err    error
}

// clearNoticeMsg expires a transient notice. The generation counter keeps an
// old timer from clearing a newer notice.
type clearNoticeMsg struct {
	gen int
}
