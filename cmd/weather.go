package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/session"
	"github.com/papapumpkin/tnguide/internal/weather"
)

var weatherCmd = &cobra.Command{
	Use:   "weather [district]",
	Short: "Show current conditions and the weekly outlook",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(_ *cobra.Command, args []string) error {
	key := current.cat.GlobalKey()
	if len(args) == 1 && !current.cat.IsGlobal(args[0]) {
		k, ok := current.cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("weather: %w: %q", session.ErrUnknownRegion, args[0])
		}
		key = k
	}
	r, ok := weather.For(current.cat, key)
	if !ok {
		return fmt.Errorf("weather: %w: %q", session.ErrUnknownRegion, key)
	}
	current.printer.Weather(r)
	return nil
}
