package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// errCatalogInvalid is returned after the problems have been printed.
var errCatalogInvalid = errors.New("catalog has errors")

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file for errors",
	Long: `Decode and validate a catalog file, reporting every problem with its
district and place. Without a file, the configured catalog is checked.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationNoCatalog: "true"},
	RunE:        runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := current.cfg.CatalogPath
	if len(args) == 1 {
		path = args[0]
	}
	source := sourceName(path)

	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			current.printer.ValidateResult(source, 0, 0, []error{err})
			return errCatalogInvalid
		}
		current.printer.ValidateResult(source, cat.Len(), cat.PlaceCount(), nil)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	f, err := catalog.Decode(data, path)
	if err != nil {
		current.printer.ValidateResult(source, 0, 0, []error{err})
		return errCatalogInvalid
	}
	problems := catalog.Validate(f, path)
	if len(problems) > 0 {
		errs := make([]error, len(problems))
		for i := range problems {
			errs[i] = &problems[i]
		}
		current.printer.ValidateResult(source, len(f.Regions), countPlaces(f), errs)
		return errCatalogInvalid
	}
	current.printer.ValidateResult(source, len(f.Regions), countPlaces(f), nil)
	return nil
}

func countPlaces(f catalog.File) int {
	n := 0
	for _, r := range f.Regions {
		n += len(r.Places)
	}
	return n
}
