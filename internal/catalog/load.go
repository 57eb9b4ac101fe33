package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// EmbeddedSource names the built-in catalog in errors and logs.
const EmbeddedSource = "embedded:tamilnadu.toml"

//go:embed data/tamilnadu.toml
var embeddedTOML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in catalog. It is parsed on first use and shared.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(embeddedTOML, EmbeddedSource)
	})
	return defaultCat, defaultErr
}

// MustDefault is Default for callers that cannot proceed without data, such
// as tests and package-level fixtures. It panics if the embedded file is bad.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog file from path. An empty path loads the built-in
// catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML catalog data and builds a Catalog. Unknown keys are
// rejected so typos in hand-edited files surface immediately.
func Parse(data []byte, source string) (*Catalog, error) {
	f, err := Decode(data, source)
	if err != nil {
		return nil, err
	}
	return New(f, source)
}

// Decode parses TOML catalog data without validating or enriching it.
func Decode(data []byte, source string) (File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return File{}, fmt.Errorf("parsing %s: %s", source, strict.String())
		}
		return File{}, fmt.Errorf("parsing %s: %w", source, err)
	}
	return f, nil
}

// Encode renders a catalog file document as TOML.
func Encode(f File) ([]byte, error) {
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return data, nil
}
