package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/config"
	"github.com/papapumpkin/tnguide/internal/logging"
	"github.com/papapumpkin/tnguide/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:               "tnguide",
	Short:             "Tamil Nadu travel guide",
	Long:              "Browse districts and places of Tamil Nadu, plan a trip with the quiz, and estimate its cost.",
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runRootDefault,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if current.printer != nil {
			current.printer.Error(err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .tnguide.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("catalog", "", "catalog TOML file (default: built-in)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	_ = viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tnguide")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// env is what every subcommand needs after setup.
type env struct {
	cfg     config.Config
	cat     *catalog.Catalog
	printer *ui.Printer
	logOut  io.Closer
}

var current env

// setup loads configuration, starts logging and loads the catalog.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Log.Level = "debug"
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	printer := ui.NewTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor && isStderrTTY())

	var closer io.Closer
	out := io.Writer(cmd.ErrOrStderr())
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}
	logging.Init(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  out,
		NoColor: noColor || cfg.Log.File != "",
	})

	var cat *catalog.Catalog
	if cmd.Annotations[annotationNoCatalog] == "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		logging.Debug().Str("source", sourceName(cfg.CatalogPath)).Int("places", cat.PlaceCount()).Msg("catalog loaded")
	}

	current = env{cfg: cfg, cat: cat, printer: printer, logOut: closer}
	return nil
}

func teardown(*cobra.Command, []string) {
	if current.logOut != nil {
		_ = current.logOut.Close()
	}
}

// annotationNoCatalog marks commands that load their own catalog.
const annotationNoCatalog = "no-catalog"

func sourceName(path string) string {
	if path == "" {
		return catalog.EmbeddedSource
	}
	return path
}

// runRootDefault launches the TUI on a terminal and shows help otherwise.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if !isStderrTTY() {
		current.printer.Banner()
		return cmd.Help()
	}
	return runTUI(tuiCmd, args)
}

func isStderrTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
