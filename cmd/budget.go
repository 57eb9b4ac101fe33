package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/budget"
	"github.com/papapumpkin/tnguide/internal/session"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Estimate the cost of a trip",
	Long: `Estimate a trip from the per-day style rates (Budget Friendly, Moderate,
Luxury). With --region, also price the trip from that district's own travel,
stay and food costs.`,
	Args: cobra.NoArgs,
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().Int("days", session.DefaultDays, "trip length in days (1-30)")
	budgetCmd.Flags().Int("travelers", 1, "number of travelers (1-20)")
	budgetCmd.Flags().String("style", string(budget.StyleModerate), "travel style: budget, moderate, luxury")
	budgetCmd.Flags().String("region", "", "also price the trip at this district's rates")
	budgetCmd.Flags().Int("max", session.DefaultMaxBudget, "budget to compare against (0 to skip)")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")
	travelers, _ := cmd.Flags().GetInt("travelers")
	styleFlag, _ := cmd.Flags().GetString("style")
	maxBudget, _ := cmd.Flags().GetInt("max")

	style, err := budget.ParseStyle(styleFlag)
	if err != nil {
		return err
	}
	est, err := budget.Estimate(budget.Trip{Days: days, Travelers: travelers, Style: style})
	if err != nil {
		return err
	}
	current.printer.Budget(string(style), est, maxBudget)

	name, _ := cmd.Flags().GetString("region")
	if name == "" {
		return nil
	}
	key, ok := current.cat.Lookup(name)
	if !ok {
		return fmt.Errorf("budget: %w: %q", session.ErrUnknownRegion, name)
	}
	region, err := current.cat.Region(key)
	if err != nil {
		return err
	}
	current.printer.Budget(key+" at local rates", budget.ForRegion(region, days, travelers), maxBudget)
	return nil
}
