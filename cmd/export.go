package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as SQLite or JSON",
	Long: `Write the enriched catalog, with every derived field resolved, to a
SQLite database or a JSON document for use by other tools. Re-exporting to an
existing database replaces its catalog tables.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "output file (required)")
	exportCmd.Flags().String("format", string(export.FormatSQLite), "output format: sqlite or json")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	current.printer.Info(fmt.Sprintf("writing %s to %s", format, out))
	if err := export.ToFile(ctx, current.cat, out, format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	current.printer.ExportDone(out, string(format), current.cat.Len(), current.cat.PlaceCount())
	return nil
}
