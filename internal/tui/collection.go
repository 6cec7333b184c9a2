package tui

import (
	"context"

	"govreg/internal/portal"
)

// Customization is the per-render-cycle column decision. It is computed
// once from the whole page, never per row, so the header and body stay
// structurally consistent within one load: if any row on the page carries
// an action, every row gets an action cell (possibly empty).
type Customization struct {
	ShowActions bool
}

// Row is one rendered record. Cells align with Collection.Columns for the
// same Customization. ID is the record's stable identifier and keys the
// confirmation modals.
type Row struct {
	ID    int64
	Cells []string
	Link  string // primary action target, e.g. the record's portal URL

	// Action fields are zero unless the record is actionable.
	Actionable  bool
	ActionURL   string
	ActionLabel string // "Delete", "Remove", ...
	ModalTitle  string
	ModalBody   string
}

// Page is one loaded page of a collection, already mapped to view rows.
type Page struct {
	Meta          portal.PageMeta
	Rows          []Row
	Cust          Customization
	StatusChoices []portal.StatusChoice // server-declared filter options, may be nil
}

// Column describes one table column. SortKey is empty for columns the
// endpoint cannot sort by.
type Column struct {
	Title    string
	SortKey  string
	MinWidth int
}

// Collection binds one remote collection (domains, domain requests,
// members) to the generic table: which endpoint to call, how to map
// records to rows, which columns exist for a given customization, and the
// default status-filter choices.
type Collection interface {
	// Key is the collection's identifier, used in command names and logs.
	Key() string
	// Title heads the interactive view.
	Title() string
	// ItemName is the singular noun for the result counter.
	ItemName() string
	// SearchHint is the placeholder shown in the empty search input.
	SearchHint() string
	Columns(cust Customization) []Column
	// StatusChoices returns the built-in filter options; server-declared
	// choices on a loaded page take precedence when present.
	StatusChoices() []portal.StatusChoice
	FetchPage(ctx context.Context, client *portal.Client, q portal.Query) (*Page, error)
}
