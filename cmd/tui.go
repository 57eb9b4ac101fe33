package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/logging"
	"github.com/papapumpkin/tnguide/internal/session"
	"github.com/papapumpkin/tnguide/internal/telemetry"
	"github.com/papapumpkin/tnguide/internal/tui"
)

// errNoTTY is returned when the TUI is requested without a terminal.
var errNoTTY = errors.New("tnguide tui requires a TTY (terminal)")

// tuiCmd launches the interactive guide.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive guide",
	Long: `Launch the full-screen guide: search districts and places, browse
listings by category, plan a trip with the quiz, and check costs and weather.
When a catalog file is configured it is watched and reloaded on change.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("region", "", "start in this district")
	tuiCmd.Flags().Bool("light", false, "use the light theme")
	tuiCmd.Flags().Bool("no-watch", false, "do not reload the catalog file on change")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return errNoTTY
	}
	cfg := current.cfg

	// The screen belongs to the TUI; log lines go to the file or nowhere.
	if cfg.Log.File == "" {
		logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: io.Discard})
	}

	if r, _ := cmd.Flags().GetString("region"); r != "" {
		cfg.DefaultRegion = r
	}
	if light, _ := cmd.Flags().GetBool("light"); light {
		cfg.LightMode = true
	}

	var rec *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		var err error
		rec, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return err
		}
		defer rec.Close()
	}

	opts := session.Options{
		DefaultRegion: cfg.DefaultRegion,
		NoticeTTL:     cfg.NoticeTTL,
		Strict:        cfg.Strict,
	}
	if rec != nil {
		opts.Recorder = rec
	}
	sess, err := session.New(current.cat, opts)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	p := tui.NewProgram(sess, tui.Options{
		SuggestionLimit: cfg.SuggestionLimit,
		DetailDelay:     cfg.DetailDelay,
		Light:           cfg.LightMode,
	})

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if cfg.CatalogPath != "" && !noWatch {
		w, err := catalog.NewWatcher(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go tui.WatchCatalog(ctx, p, w.Reloads)
	}

	logging.Info().Str("region", sess.RegionKey()).Str("session", rec.SessionID()).Msg("tui start")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
