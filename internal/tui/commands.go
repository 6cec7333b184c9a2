package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"govreg/internal/portal"
	"govreg/internal/table"
)

const noticeDuration = 6 * time.Second

// fetchPageCmd fetches one page for the candidate state. The state rides
// along in the message so the model can commit it only on success.
func fetchPageCmd(client *portal.Client, col Collection, scope table.Scope, state table.State, seq int) tea.Cmd {
	return func() tea.Msg {
		page, err := col.FetchPage(context.Background(), client, table.BuildQuery(state, scope))
		return pageLoadedMsg{seq: seq, state: state, page: page, err: err}
	}
}

// submitActionCmd posts a confirmed row action to the portal.
func submitActionCmd(client *portal.Client, id int64, actionURL string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.SubmitAction(context.Background(), actionURL)
		return actionResultMsg{id: id, result: result, err: err}
	}
}

// clearNoticeCmd schedules expiry of the current notice.
func clearNoticeCmd(gen int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{gen: gen}
	})
}
