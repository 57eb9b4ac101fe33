package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Resolve a district or place name",
	Long: `Resolve a query the way the search box does: an exact district name
first, then districts containing the query, then places containing it.
With --suggest, print the ranked suggestion list instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("suggest", false, "list every match instead of the best one")
	searchCmd.Flags().Int("limit", 0, "maximum suggestions (default: suggestion_limit)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if _, err := search.Normalize(query); err != nil {
		return err
	}
	r := search.New(current.cat)

	if suggest, _ := cmd.Flags().GetBool("suggest"); suggest {
		limit := current.cfg.SuggestionLimit
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}
		current.printer.Suggestions(r.Suggest(query, limit))
		return nil
	}

	current.printer.SearchResult(query, r.Resolve(query))
	return nil
}
