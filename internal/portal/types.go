package portal

// PageMeta is the pagination metadata every collection endpoint returns
// alongside its items. Total counts rows matching the active search and
// filters; UnfilteredTotal ignores them, which is what lets a caller tell
// "no data at all" apart from "no matches for this search".
type PageMeta struct {
	Page            int    `json:"page"`
	NumPages        int    `json:"num_pages"`
	HasPrevious     bool   `json:"has_previous"`
	HasNext         bool   `json:"has_next"`
	Total           int    `json:"total"`
	UnfilteredTotal int    `json:"unfiltered_total"`
	Error           string `json:"error,omitempty"`
}

// StatusChoice is one server-declared filter option (value + display label).
type StatusChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Domain is one registered domain row.
type Domain struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ExpirationDate  string `json:"expiration_date"`
	State           string `json:"state"`
	StateDisplay    string `json:"state_display"`
	Suborganization string `json:"suborganization,omitempty"`
}

// DomainsPage is the domains collection response.
type DomainsPage struct {
	PageMeta
	Domains      []Domain       `json:"domains"`
	StateChoices []StatusChoice `json:"state_choices,omitempty"`
}

// DomainRequest is one pending or completed domain request row. Whether a
// request can be withdrawn/deleted is declared per record by the server.
type DomainRequest struct {
	ID                int64  `json:"id"`
	RequestedDomain   string `json:"requested_domain"`
	Status            string `json:"status"`
	StatusDisplay     string `json:"status_display"`
	CreatedAt         string `json:"created_at"`
	LastSubmittedDate string `json:"last_submitted_date,omitempty"`
	IsDeletable       bool   `json:"is_deletable"`
	ActionURL         string `json:"action_url,omitempty"`
}

// RequestsPage is the domain requests collection response.
type RequestsPage struct {
	PageMeta
	Requests      []DomainRequest `json:"domain_requests"`
	StatusChoices []StatusChoice  `json:"status_choices,omitempty"`
}

// Member is one organization member row.
type Member struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	LastActive string `json:"last_active"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"is_admin"`
	ActionURL  string `json:"action_url,omitempty"`
}

// MembersPage is the organization members collection response.
// ViewerCanManage is a page-level capability flag: removal actions are only
// offered when the requesting viewer has management permission.
type MembersPage struct {
	PageMeta
	Members         []Member `json:"members"`
	ViewerCanManage bool     `json:"viewer_can_manage"`
}

// ActionResult is what a mutating endpoint returns. Exactly one of Success
// or Error is normally populated; both are human-readable.
type ActionResult struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}
