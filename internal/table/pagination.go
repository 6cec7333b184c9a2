package table

// LinkKind discriminates the entries of a pagination window.
type LinkKind int

const (
	LinkPrevious LinkKind = iota
	LinkPage
	LinkEllipsis
	LinkNext
)

// Link is one entry in the pagination control: a page number (Current set
// on the active one), an ellipsis, or a previous/next arrow.
type Link struct {
	Kind    LinkKind
	Page    int
	Current bool
}

// BuildWindow converts the pagination metadata into the ordered list of
// links to render. The window always contains the current page and its
// immediate neighbors; the first and last page are always present (with at
// most one ellipsis on each side), so any page is reachable within one step
// plus a neighbor click.
func BuildWindow(current, numPages int, hasPrevious, hasNext bool) []Link {
	var links []Link

	if hasPrevious {
		links = append(links, Link{Kind: LinkPrevious})
	}

	if current > 2 {
		links = append(links, Link{Kind: LinkPage, Page: 1})
		if current > 3 {
			links = append(links, Link{Kind: LinkEllipsis})
		}
	}

	lo := current - 1
	if lo < 1 {
		lo = 1
	}
	hi := current + 1
	if hi > numPages {
		hi = numPages
	}
	for i := lo; i <= hi; i++ {
		links = append(links, Link{Kind: LinkPage, Page: i, Current: i == current})
	}

	if current < numPages-1 {
		if current < numPages-2 {
			links = append(links, Link{Kind: LinkEllipsis})
		}
		links = append(links, Link{Kind: LinkPage, Page: numPages})
	}

	if hasNext {
		links = append(links, Link{Kind: LinkNext})
	}

	return links
}
