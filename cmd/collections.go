package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"govreg/internal/config"
	"govreg/internal/portal"
	"govreg/internal/table"
	"govreg/internal/tui"
	"govreg/pkg/logging"
)

// collectionFlags holds the shared flags of the collection commands. Each
// command gets its own instance so tests can run commands independently.
type collectionFlags struct {
	portfolio string
	search    string
	statuses  []string
	sortBy    string
	order     string
	page      int
	noTUI     bool
}

// initialState translates the flags into the view's starting state.
func (f *collectionFlags) initialState() (table.State, error) {
	state := table.Initial()
	if f.page > 0 {
		state.Page = f.page
	}
	if f.sortBy != "" {
		state.SortBy = f.sortBy
	}
	switch f.order {
	case "", portal.OrderAsc:
	case portal.OrderDesc:
		state.Order = portal.OrderDesc
	default:
		return table.State{}, fmt.Errorf("invalid --order %q: must be asc or desc", f.order)
	}
	state.SearchTerm = f.search
	if len(f.statuses) > 0 {
		state.Statuses = append([]string(nil), f.statuses...)
		sort.Strings(state.Statuses)
	}
	return state, nil
}

// newCollectionCmd builds one of the collection commands. All three share
// flags and behavior; only the collection differs.
func newCollectionCmd(col tui.Collection, short string) *cobra.Command {
	flags := &collectionFlags{}

	cmd := &cobra.Command{
		Use:   col.Key(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollection(cmd, col, flags)
		},
	}

	cmd.Flags().StringVar(&flags.portfolio, "portfolio", "", "Portfolio ID to scope the listing to")
	cmd.Flags().StringVar(&flags.search, "search", "", "Search term")
	cmd.Flags().StringSliceVar(&flags.statuses, "status", nil, "Status filter, repeatable")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "", "Sort column")
	cmd.Flags().StringVar(&flags.order, "order", "", "Sort direction: asc or desc")
	cmd.Flags().IntVar(&flags.page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&flags.noTUI, "no-tui", false, "Print one page as plain text and exit")
	return cmd
}

func runCollection(cmd *cobra.Command, col tui.Collection, flags *collectionFlags) error {
	state, err := flags.initialState()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	scope := table.Scope{
		Portfolio: flags.portfolio,
		Email:     cfg.Defaults.Email,
	}
	if scope.Portfolio == "" {
		scope.Portfolio = cfg.Defaults.Portfolio
	}

	client, err := portal.New(cfg.Portal)
	if err != nil {
		return fmt.Errorf("failed to create portal client: %w", err)
	}

	level := logging.ParseLevel(cfg.LogLevel)

	// Piped output gets the plain table even without --no-tui.
	if flags.noTUI || !term.IsTerminal(int(os.Stdout.Fd())) {
		logging.InitForCLI(level, cmd.ErrOrStderr())
		page, err := col.FetchPage(cmd.Context(), client, table.BuildQuery(state, scope))
		if err != nil {
			return fmt.Errorf("failed to load %ss: %w", col.ItemName(), err)
		}
		tui.RenderPlain(cmd.OutOrStdout(), col, page, state.SearchTerm)
		return nil
	}

	logPath := logging.InitForTUI(level)
	defer logging.Close()
	logging.Info("CLI", "Starting %s view, logs at %s", col.Key(), logPath)
	return tui.Run(client, col, scope, state)
}

func init() {
	rootCmd.AddCommand(newCollectionCmd(tui.DomainsCollection{}, "Browse your registered domains"))
	rootCmd.AddCommand(newCollectionCmd(tui.RequestsCollection{}, "Browse your domain requests"))
	rootCmd.AddCommand(newCollectionCmd(tui.MembersCollection{}, "Browse your organization's members"))
}
