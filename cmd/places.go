package cmd

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/filter"
	"github.com/papapumpkin/tnguide/internal/session"
)

var placesCmd = &cobra.Command{
	Use:   "places [district]",
	Short: "List the places of a district, or of the whole state",
	Long: `List places filtered by category and ordered by the chosen sort.
Without a district the default district is listed. A category without a
district lists matching places statewide.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlaces,
}

func init() {
	placesCmd.Flags().String("category", "", "category filter (Temple, Beach, Hill Station, Heritage, Nature, ...)")
	placesCmd.Flags().String("sort", string(filter.SortRecommended), "sort order: recommended, rating, reviews, name")
	placesCmd.Flags().Bool("all", false, "list every district")
	rootCmd.AddCommand(placesCmd)
}

func runPlaces(cmd *cobra.Command, args []string) error {
	sess, err := session.New(current.cat, session.Options{DefaultRegion: current.cfg.DefaultRegion})
	if err != nil {
		return err
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		target = current.cat.GlobalKey()
	}
	category, _ := cmd.Flags().GetString("category")
	if err := sess.Explore(target, category); err != nil {
		if len(args) == 1 {
			return fmt.Errorf("places %q: %w", args[0], err)
		}
		return fmt.Errorf("places: %w", err)
	}

	sortFlag, _ := cmd.Flags().GetString("sort")
	sess.SetSort(filter.ParseSortKey(sortFlag))

	snap := sess.Snapshot()
	title := snap.RegionKey
	if snap.Category != catalog.CategoryAll {
		title += " · " + string(snap.Category)
	}
	title += " · " + snap.Sort.Label()
	current.printer.Places(title, sess.Listing())
	if r, ok := sess.Region(); ok {
		if link := cmp.Or(r.MapURL, r.MapEmbedURL); link != "" {
			current.printer.MapLink(link)
		}
	}
	return nil
}
