package table

import "fmt"

// ContentMode selects what the table area shows for a loaded page.
type ContentMode int

const (
	// ShowTable renders the rows.
	ShowTable ContentMode = iota
	// ShowNoData replaces the table: the collection is empty regardless
	// of search or filters.
	ShowNoData
	// ShowNoMatches replaces the table: data exists but nothing matches
	// the active search/filters.
	ShowNoMatches
)

// ModeFor picks the content mode from the page totals.
func ModeFor(total, unfilteredTotal int) ContentMode {
	if unfilteredTotal == 0 {
		return ShowNoData
	}
	if total == 0 {
		return ShowNoMatches
	}
	return ShowTable
}

// CounterText renders the result counter, e.g. `1 domain`, `12 domains`,
// or `3 members for "jo"`. Callers hide the counter entirely when total
// is below one.
func CounterText(total int, itemName, searchTerm string) string {
	name := itemName
	if total != 1 {
		name += "s"
	}
	if searchTerm != "" {
		return fmt.Sprintf("%d %s for %q", total, name, searchTerm)
	}
	return fmt.Sprintf("%d %s", total, name)
}
