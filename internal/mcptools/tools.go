// Package mcptools exposes the portal collections as read-only MCP tools
// so agents can query domains, domain requests and organization members
// over stdio.
package mcptools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"govreg/internal/portal"
	"govreg/internal/table"
)

// CollectionTools returns the read-only tool definitions.
func CollectionTools() []mcp.Tool {
	return []mcp.Tool{
		listTool("domains_list",
			"List registered domains with pagination, sorting, search and status filters",
			"Sort column: id, name, expiration_date or state"),
		listTool("requests_list",
			"List domain requests with pagination, sorting, search and status filters",
			"Sort column: id, requested_domain, last_submitted_date or status"),
		listTool("members_list",
			"List organization members with pagination, sorting, search and status filters",
			"Sort column: id, member, email or last_active"),
	}
}

func listTool(name, description, sortHelp string) mcp.Tool {
	opts := append([]mcp.ToolOption{mcp.WithDescription(description)}, listArguments(sortHelp)...)
	return mcp.NewTool(name, opts...)
}

// listArguments is the shared argument set of the list tools. Only the
// sort column vocabulary differs between collections.
func listArguments(sortHelp string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1"),
		),
		mcp.WithString("sort_by",
			mcp.Description(sortHelp),
		),
		mcp.WithString("order",
			mcp.Description("Sort direction"),
			mcp.Enum("asc", "desc"),
		),
		mcp.WithString("search_term",
			mcp.Description("Case-insensitive search term"),
		),
		mcp.WithString("status",
			mcp.Description("Status filter values, comma separated"),
		),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio ID to scope the listing to"),
		),
	}
}

// queryFromRequest maps tool arguments onto a portal query. Missing
// arguments fall back to the defaults the query layer applies, and the
// configured scope fills anything the caller did not override.
func queryFromRequest(request mcp.CallToolRequest, scope table.Scope) portal.Query {
	args := request.GetArguments()

	q := portal.Query{
		Portfolio: scope.Portfolio,
		Email:     scope.Email,
	}
	if page, ok := args["page"].(float64); ok {
		q.Page = int(page)
	}
	if sortBy, ok := args["sort_by"].(string); ok {
		q.SortBy = sortBy
	}
	if order, ok := args["order"].(string); ok {
		q.Order = order
	}
	if term, ok := args["search_term"].(string); ok {
		q.SearchTerm = term
	}
	if status, ok := args["status"].(string); ok && status != "" {
		q.Statuses = splitStatuses(status)
	}
	if portfolio, ok := args["portfolio"].(string); ok && portfolio != "" {
		q.Portfolio = portfolio
	}
	return q
}

func splitStatuses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
