package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"govreg/internal/portal"
)

func TestInitialState(t *testing.T) {
	s := Initial()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "id", s.SortBy)
	assert.Equal(t, portal.OrderAsc, s.Order)
	assert.Empty(t, s.Statuses)
	assert.Empty(t, s.SearchTerm)
	assert.False(t, s.ScrollOnLoad)
}

func TestSortToggleCycles(t *testing.T) {
	s := Initial()

	s = Reduce(s, SetSort{Column: "name"})
	assert.Equal(t, "name", s.SortBy)
	assert.Equal(t, portal.OrderAsc, s.Order)

	s = Reduce(s, SetSort{Column: "name"})
	assert.Equal(t, portal.OrderDesc, s.Order)

	s = Reduce(s, SetSort{Column: "name"})
	assert.Equal(t, portal.OrderAsc, s.Order)
}

func TestSortChangeResetsPageKeepsFilters(t *testing.T) {
	s := Initial()
	s = Reduce(s, SubmitSearch{Term: "city"})
	s = Reduce(s, ToggleStatus{Value: "ready", Checked: true})
	s = Reduce(s, GotoPage{Page: 4})

	s = Reduce(s, SetSort{Column: "expiration_date"})
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "city", s.SearchTerm)
	assert.Equal(t, []string{"ready"}, s.Statuses)
	assert.True(t, s.ScrollOnLoad)
}

func TestSearchSubmitResetsSortKeepsStatuses(t *testing.T) {
	s := Initial()
	s = Reduce(s, ToggleStatus{Value: "expired", Checked: true})
	s = Reduce(s, SetSort{Column: "name"})
	s = Reduce(s, GotoPage{Page: 3})

	s = Reduce(s, SubmitSearch{Term: "x"})
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "id", s.SortBy)
	assert.Equal(t, portal.OrderAsc, s.Order)
	assert.Equal(t, "x", s.SearchTerm)
	assert.Equal(t, []string{"expired"}, s.Statuses)
}

func TestToggleStatusAddRemove(t *testing.T) {
	s := Initial()
	s = Reduce(s, ToggleStatus{Value: "ready", Checked: true})
	s = Reduce(s, ToggleStatus{Value: "expired", Checked: true})
	assert.Equal(t, []string{"expired", "ready"}, s.Statuses)
	assert.Equal(t, 2, s.FilterCount())
	assert.True(t, s.HasStatus("ready"))

	// Toggling an already-present value on is a no-op.
	s = Reduce(s, ToggleStatus{Value: "ready", Checked: true})
	assert.Equal(t, []string{"expired", "ready"}, s.Statuses)

	s = Reduce(s, ToggleStatus{Value: "expired", Checked: false})
	assert.Equal(t, []string{"ready"}, s.Statuses)
	assert.False(t, s.HasStatus("expired"))
}

func TestFilterAxisChangesSuppressScroll(t *testing.T) {
	s := Initial()
	s = Reduce(s, GotoPage{Page: 2})
	assert.True(t, s.ScrollOnLoad)

	s = Reduce(s, ToggleStatus{Value: "ready", Checked: true})
	assert.False(t, s.ScrollOnLoad)

	s = Reduce(s, GotoPage{Page: 2})
	s = Reduce(s, ResetFilters{})
	assert.False(t, s.ScrollOnLoad)
	assert.Empty(t, s.Statuses)

	s = Reduce(s, SubmitSearch{Term: "a"})
	assert.True(t, s.ScrollOnLoad)
	s = Reduce(s, ResetSearch{})
	assert.False(t, s.ScrollOnLoad)
	assert.Empty(t, s.SearchTerm)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Initial()
	s = Reduce(s, ToggleStatus{Value: "ready", Checked: true})

	before := s
	beforeStatuses := append([]string(nil), s.Statuses...)

	_ = Reduce(s, ToggleStatus{Value: "expired", Checked: true})
	_ = Reduce(s, ResetFilters{})

	assert.Equal(t, before.Page, s.Page)
	assert.Equal(t, beforeStatuses, s.Statuses)
}

func TestGotoPageClamps(t *testing.T) {
	s := Reduce(Initial(), GotoPage{Page: 0})
	assert.Equal(t, 1, s.Page)
}

func TestBuildQueryReflectsStateAndScope(t *testing.T) {
	s := Initial()
	s = Reduce(s, ToggleStatus{Value: "ready", Checked: true})
	s = Reduce(s, SubmitSearch{Term: "park"})
	s = Reduce(s, GotoPage{Page: 2})

	q := BuildQuery(s, Scope{Portfolio: "9", Email: "v@example.gov"})
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, "id", q.SortBy)
	assert.Equal(t, portal.OrderAsc, q.Order)
	assert.Equal(t, "park", q.SearchTerm)
	assert.Equal(t, []string{"ready"}, q.Statuses)
	assert.Equal(t, "9", q.Portfolio)
	assert.Equal(t, "v@example.gov", q.Email)
}
