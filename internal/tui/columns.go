package tui

import (
	"context"
	"fmt"

	"govreg/internal/portal"
)

// ---------------------------------------------------------------------------
// Domains
// ---------------------------------------------------------------------------

// DomainsCollection is the registered-domains table.
type DomainsCollection struct{}

func (DomainsCollection) Key() string        { return "domains" }
func (DomainsCollection) Title() string      { return "Domains" }
func (DomainsCollection) ItemName() string   { return "domain" }
func (DomainsCollection) SearchHint() string { return "Search by domain name" }

func (DomainsCollection) Columns(Customization) []Column {
	// Domains carry no row actions; the column set is fixed.
	return []Column{
		{Title: "Domain name", SortKey: "name", MinWidth: 16},
		{Title: "Expires", SortKey: "expiration_date", MinWidth: 10},
		{Title: "Status", SortKey: "state", MinWidth: 10},
		{Title: "Suborganization", MinWidth: 12},
	}
}

func (DomainsCollection) StatusChoices() []portal.StatusChoice {
	return []portal.StatusChoice{
		{Value: "ready", Label: "Ready"},
		{Value: "dns needed", Label: "DNS needed"},
		{Value: "on hold", Label: "On hold"},
		{Value: "expired", Label: "Expired"},
		{Value: "deleted", Label: "Deleted"},
	}
}

func (DomainsCollection) FetchPage(ctx context.Context, client *portal.Client, q portal.Query) (*Page, error) {
	result, err := client.Domains(ctx, q)
	if err != nil {
		return nil, err
	}
	page := &Page{Meta: result.PageMeta, StatusChoices: result.StateChoices}
	for _, d := range result.Domains {
		page.Rows = append(page.Rows, Row{
			ID:    d.ID,
			Cells: []string{d.Name, orDash(d.ExpirationDate), d.StateDisplay, orDash(d.Suborganization)},
			Link:  fmt.Sprintf("/domain/%d", d.ID),
		})
	}
	return page, nil
}

// ---------------------------------------------------------------------------
// Domain requests
// ---------------------------------------------------------------------------

// RequestsCollection is the domain-requests table. A delete column exists
// for a render cycle only when the server marked at least one request on
// the page as deletable.
type RequestsCollection struct{}

func (RequestsCollection) Key() string        { return "requests" }
func (RequestsCollection) Title() string      { return "Domain requests" }
func (RequestsCollection) ItemName() string   { return "domain request" }
func (RequestsCollection) SearchHint() string { return "Search by requested domain name" }

func (RequestsCollection) Columns(cust Customization) []Column {
	cols := []Column{
		{Title: "Domain name", SortKey: "requested_domain", MinWidth: 16},
		{Title: "Submitted", SortKey: "last_submitted_date", MinWidth: 10},
		{Title: "Status", SortKey: "status", MinWidth: 12},
	}
	if cust.ShowActions {
		cols = append(cols, Column{Title: "Action", MinWidth: 8})
	}
	return cols
}

func (RequestsCollection) StatusChoices() []portal.StatusChoice {
	return []portal.StatusChoice{
		{Value: "started", Label: "Started"},
		{Value: "submitted", Label: "Submitted"},
		{Value: "in review", Label: "In review"},
		{Value: "action needed", Label: "Action needed"},
		{Value: "rejected", Label: "Rejected"},
		{Value: "withdrawn", Label: "Withdrawn"},
	}
}

func (RequestsCollection) FetchPage(ctx context.Context, client *portal.Client, q portal.Query) (*Page, error) {
	result, err := client.Requests(ctx, q)
	if err != nil {
		return nil, err
	}

	page := &Page{Meta: result.PageMeta, StatusChoices: result.StatusChoices}
	for _, r := range result.Requests {
		if r.IsDeletable {
			page.Cust.ShowActions = true
		}
	}
	for _, r := range result.Requests {
		name := r.RequestedDomain
		if name == "" {
			name = "New domain request"
		}
		row := Row{
			ID:    r.ID,
			Cells: []string{name, orDash(r.LastSubmittedDate), r.StatusDisplay},
			Link:  fmt.Sprintf("/domain-request/%d", r.ID),
		}
		if page.Cust.ShowActions {
			action := ""
			if r.IsDeletable && r.ActionURL != "" {
				action = "Delete"
				row.Actionable = true
				row.ActionURL = r.ActionURL
				row.ActionLabel = "Delete"
				row.ModalTitle = fmt.Sprintf("Delete %s?", name)
				row.ModalBody = "This will remove the domain request and cannot be undone."
			}
			row.Cells = append(row.Cells, action)
		}
		page.Rows = append(page.Rows, row)
	}
	return page, nil
}

// ---------------------------------------------------------------------------
// Organization members
// ---------------------------------------------------------------------------

// MembersCollection is the organization-members table. The removal column
// exists only when the page-level capability flag says the viewer may
// manage members.
type MembersCollection struct{}

func (MembersCollection) Key() string        { return "members" }
func (MembersCollection) Title() string      { return "Members" }
func (MembersCollection) ItemName() string   { return "member" }
func (MembersCollection) SearchHint() string { return "Search by member name or email" }

func (MembersCollection) Columns(cust Customization) []Column {
	cols := []Column{
		{Title: "Member", SortKey: "member", MinWidth: 16},
		{Title: "Email", SortKey: "email", MinWidth: 18},
		{Title: "Last active", SortKey: "last_active", MinWidth: 11},
		{Title: "Role", MinWidth: 6},
	}
	if cust.ShowActions {
		cols = append(cols, Column{Title: "Action", MinWidth: 8})
	}
	return cols
}

func (MembersCollection) StatusChoices() []portal.StatusChoice {
	return []portal.StatusChoice{
		{Value: "invited", Label: "Invited"},
		{Value: "active", Label: "Active"},
	}
}

func (MembersCollection) FetchPage(ctx context.Context, client *portal.Client, q portal.Query) (*Page, error) {
	result, err := client.Members(ctx, q)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Meta: result.PageMeta,
		Cust: Customization{ShowActions: result.ViewerCanManage},
	}
	for _, m := range result.Members {
		display := m.Name
		if display == "" {
			display = m.Email
		}
		role := m.Role
		if role == "" {
			if m.IsAdmin {
				role = "Admin"
			} else {
				role = "Basic"
			}
		}
		row := Row{
			ID:    m.ID,
			Cells: []string{display, m.Email, orDash(m.LastActive), role},
			Link:  fmt.Sprintf("/member/%d", m.ID),
		}
		if page.Cust.ShowActions {
			action := ""
			if m.ActionURL != "" {
				action = "Remove"
				row.Actionable = true
				row.ActionURL = m.ActionURL
				row.ActionLabel = "Remove"
				row.ModalTitle = fmt.Sprintf("Remove %s?", display)
				row.ModalBody = fmt.Sprintf("%s will no longer be able to access this organization.", display)
			}
			row.Cells = append(row.Cells, action)
		}
		page.Rows = append(page.Rows, row)
	}
	return page, nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
