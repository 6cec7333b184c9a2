package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the TUI, defined using the lipgloss library.
// These styles control the appearance of the table, the pagination bar,
// the status bar and the overlays.
var (
	// appStyle defines the overall margin for the application view.
	appStyle = lipgloss.NewStyle().Margin(0, 1)

	// titleStyle is for the collection title at the top of the view.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	// headerRowStyle renders the column header row, including sort arrows.
	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#606060"})

	// headerCursorStyle marks the column the selection cursor sits on.
	headerCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	// selectedRowStyle highlights the row under the cursor.
	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#D6E4FF", Dark: "#1E3A5F"})

	// counterStyle is for the "N domains" line above the table.
	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#404040", Dark: "#B0B0B0"})

	// placeholderStyle renders the empty and no-matches messages.
	placeholderStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).
				Padding(1, 2)

	// pageLinkStyle and currentPageStyle render the pagination bar.
	pageLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"}).
			Padding(0, 1)
	currentPageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}).
				Background(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"}).
				Padding(0, 1)
	ellipsisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#606060"}).
			Padding(0, 1)

	// noticeStyle and errorNoticeStyle render transient status-bar messages.
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006600", Dark: "#8AE234"}).
			Bold(true)
	errorNoticeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"}).
				Bold(true)

	// filterBadgeStyle shows the active-filter count next to the title.
	filterBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}).
				Background(lipgloss.AdaptiveColor{Light: "#A07000", Dark: "#FFD066"}).
				Padding(0, 1)

	// overlayStyle frames the filter panel and the confirmation modal.
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"}).
			Padding(1, 2)

	// modalTitleStyle is for the confirmation modal heading.
	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"})

	// checkedStyle marks an enabled status filter in the filter panel.
	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006600", Dark: "#8AE234"})
)
