// Package table holds the pure view-state machinery behind every paginated
// collection view: an immutable state value, a single reducer applying user
// interactions to it, the pagination window builder, and the result-counter
// helpers. Nothing in here performs I/O; the TUI drives it.
package table

import (
	"slices"

	"govreg/internal/portal"
)

const (
	defaultSortBy = "id"
)

// State is the view state of one collection table. Values are treated as
// immutable: Reduce returns a fresh State and never mutates its input, so
// a render cycle always sees a consistent snapshot.
type State struct {
	Page       int
	SortBy     string
	Order      string
	Statuses   []string // active status filters, OR semantics, sorted
	SearchTerm string
	// ScrollOnLoad reports whether the next successful load should snap
	// the view back to the top of the table.
	ScrollOnLoad bool
}

// Initial returns the state of a table before its first load.
func Initial() State {
	return State{
		Page:   1,
		SortBy: defaultSortBy,
		Order:  portal.OrderAsc,
	}
}

// Action is one user interaction with the table. The concrete types below
// are the only implementations.
type Action interface {
	isAction()
}

// GotoPage follows a pagination link.
type GotoPage struct{ Page int }

// SetSort activates a column header: same column flips the order,
// a different column sorts ascending.
type SetSort struct{ Column string }

// SubmitSearch replaces the free-text search term.
type SubmitSearch struct{ Term string }

// ResetSearch clears the search term.
type ResetSearch struct{}

// ToggleStatus adds or removes one status filter value.
type ToggleStatus struct {
	Value   string
	Checked bool
}

// ResetFilters clears every status filter.
type ResetFilters struct{}

func (GotoPage) isAction()     {}
func (SetSort) isAction()      {}
func (SubmitSearch) isAction() {}
func (ResetSearch) isAction()  {}
func (ToggleStatus) isAction() {}
func (ResetFilters) isAction() {}

// Reduce applies one action to the state and returns the next state.
//
// Invariants: changing the search term or the status filters resets the
// sort to id/ascending and the page to 1; changing the sort resets the page
// to 1 but keeps search and filters. Filter-axis changes (toggles and both
// resets) suppress the scroll-to-top on the following load; everything else
// requests it.
func Reduce(s State, a Action) State {
	next := s
	next.Statuses = slices.Clone(s.Statuses)

	switch a := a.(type) {
	case GotoPage:
		next.Page = a.Page
		if next.Page < 1 {
			next.Page = 1
		}
		next.ScrollOnLoad = true

	case SetSort:
		if a.Column == s.SortBy {
			next.Order = flipOrder(s.Order)
		} else {
			next.SortBy = a.Column
			next.Order = portal.OrderAsc
		}
		next.Page = 1
		next.ScrollOnLoad = true

	case SubmitSearch:
		next.SearchTerm = a.Term
		next = resetSort(next)
		next.Page = 1
		next.ScrollOnLoad = true

	case ResetSearch:
		next.SearchTerm = ""
		next = resetSort(next)
		next.Page = 1
		next.ScrollOnLoad = false

	case ToggleStatus:
		if a.Checked {
			if !slices.Contains(next.Statuses, a.Value) {
				next.Statuses = append(next.Statuses, a.Value)
				slices.Sort(next.Statuses)
			}
		} else {
			next.Statuses = slices.DeleteFunc(next.Statuses, func(v string) bool {
				return v == a.Value
			})
		}
		next = resetSort(next)
		next.Page = 1
		next.ScrollOnLoad = false

	case ResetFilters:
		next.Statuses = nil
		next = resetSort(next)
		next.Page = 1
		next.ScrollOnLoad = false
	}

	return next
}

// Scope carries the optional query parameters a scoped view appends.
type Scope struct {
	Portfolio string
	Email     string
}

// BuildQuery serializes the state (plus scope) into a collection query.
func BuildQuery(s State, scope Scope) portal.Query {
	return portal.Query{
		Page:       s.Page,
		SortBy:     s.SortBy,
		Order:      s.Order,
		SearchTerm: s.SearchTerm,
		Statuses:   slices.Clone(s.Statuses),
		Portfolio:  scope.Portfolio,
		Email:      scope.Email,
	}
}

// FilterCount is the number shown on the filter indicator; the indicator is
// hidden when it is zero.
func (s State) FilterCount() int {
	return len(s.Statuses)
}

// HasStatus reports whether the given filter value is active.
func (s State) HasStatus(value string) bool {
	return slices.Contains(s.Statuses, value)
}

func resetSort(s State) State {
	s.SortBy = defaultSortBy
	s.Order = portal.OrderAsc
	return s
}

func flipOrder(order string) string {
	if order == portal.OrderAsc {
		return portal.OrderDesc
	}
	return portal.OrderAsc
}
