// Package export writes a catalog out as a SQLite database or a JSON
// document, for use by tools outside the guide.
package export

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// Format selects the export encoding.
type Format string

// Supported formats.
const (
	FormatSQLite Format = "sqlite"
	FormatJSON   Format = "json"
)

// ParseFormat matches s case-insensitively. Empty means sqlite.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatSQLite), "db":
		return FormatSQLite, nil
	case string(FormatJSON):
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ToFile exports cat to path in the given format. An existing SQLite file
// has its catalog tables replaced; an existing JSON file is truncated.
func ToFile(ctx context.Context, cat *catalog.Catalog, path string, format Format) error {
	if cat == nil {
		return ErrNilCatalog
	}
	switch format {
	case FormatSQLite:
		s, err := OpenStore(ctx, path)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.Write(ctx, cat)

	case FormatJSON:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("export: create %s: %w", path, err)
		}
		if err := WriteJSON(f, cat); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("export: close %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
