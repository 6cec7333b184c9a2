package tui

// confirmModal holds everything needed to render and execute a destructive
// row action confirmation.
type confirmModal struct {
	ID          int64
	Title       string
	Body        string
	ActionURL   string
	ActionLabel string
}

// buildModals derives the confirmation registry from the rows of a freshly
// loaded page. Stale modals from a previous page never survive a load.
func buildModals(page *Page) map[int64]confirmModal {
	modals := make(map[int64]confirmModal)
	if page == nil {
		return modals
	}
	for _, row := range page.Rows {
		if !row.Actionable {
			continue
		}
		modals[row.ID] = confirmModal{
			ID:          row.ID,
			Title:       row.ModalTitle,
			Body:        row.ModalBody,
			ActionURL:   row.ActionURL,
			ActionLabel: row.ActionLabel,
		}
	}
	return modals
}
