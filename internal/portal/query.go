package portal

import (
	"net/url"
	"strconv"
)

// Sort orders accepted by the collection endpoints.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Query is one read against a collection endpoint. Page, SortBy, Order and
// SearchTerm are always serialized, even when zero-valued, because the
// endpoints treat a missing key and an empty value differently for other
// parameters. Statuses is serialized as repeated "status" values and the
// key is omitted entirely when the set is empty. Portfolio and Email are
// scoping parameters appended only when the caller operates in a scoped
// context.
type Query struct {
	Page       int
	SortBy     string
	Order      string
	SearchTerm string
	Statuses   []string
	Portfolio  string
	Email      string
}

// Values serializes the query for the collection endpoint.
func (q Query) Values() url.Values {
	page := q.Page
	if page < 1 {
		page = 1
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	order := q.Order
	if order != OrderDesc {
		order = OrderAsc
	}

	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("sort_by", sortBy)
	v.Set("order", order)
	v.Set("search_term", q.SearchTerm)
	for _, s := range q.Statuses {
		v.Add("status", s)
	}
	if q.Portfolio != "" {
		v.Set("portfolio", q.Portfolio)
	}
	if q.Email != "" {
		v.Set("email", q.Email)
	}
	return v
}
