package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

const twoRegions = `
name = "Tamil Nadu"
default_region = "Madurai"

[[regions]]
name = "Chennai"
travel_cost = 500
stay_cost_per_day = 1500
food_cost_per_day = 600
weather = { temp = 32, condition = "Sunny" }

[[regions.places]]
name = "Marina Beach"
description = "Second longest urban beach."

[[regions.places]]
name = "Kapaleeshwarar Temple"

[[regions]]
name = "Madurai"
weather = { temp = 34, condition = "Clear" }

[[regions.places]]
name = "Meenakshi Amman Temple"
rating = 4.9
category = ["Temple", "Heritage"]
`

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(twoRegions), "two.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatSQLite},
		{"sqlite", FormatSQLite},
		{"DB", FormatSQLite},
		{" json ", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("csv"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(csv) err = %v, want ErrUnknownFormat", err)
	}
}

func TestStore_WriteCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)
	c := smallCatalog(t)

	if err := s.Write(ctx, c); err != nil {
		t.Fatalf("Write: %v", err)
	}
	regions, places, err := s.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if regions != 2 || places != 3 {
		t.Errorf("counts = %d regions, %d places; want 2, 3", regions, places)
	}

	// A second write replaces rather than appends.
	if err := s.Write(ctx, c); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if _, places, _ := s.Counts(ctx); places != 3 {
		t.Errorf("places after rewrite = %d, want 3", places)
	}

	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM place_categories WHERE district = 'Madurai'").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Madurai category rows = %d, want 2", n)
	}
}

func TestStore_ReadFileRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)
	orig := smallCatalog(t)

	if err := s.Write(ctx, orig); err != nil {
		t.Fatal(err)
	}
	f, err := s.ReadFile(ctx)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	back, err := catalog.New(f, "export")
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	if back.Name() != orig.Name() || back.DefaultRegion() != "Madurai" {
		t.Errorf("meta = %q/%q", back.Name(), back.DefaultRegion())
	}
	if diff := cmp.Diff(orig.Keys(), back.Keys()); diff != "" {
		t.Errorf("region order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig.AllPlaces(), back.AllPlaces()); diff != "" {
		t.Errorf("places mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_DefaultCatalogCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)
	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Write(ctx, c); err != nil {
		t.Fatal(err)
	}
	regions, places, err := s.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if regions != c.Len() || places != c.PlaceCount() {
		t.Errorf("counts = %d/%d, want %d/%d", regions, places, c.Len(), c.PlaceCount())
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	c := smallCatalog(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, c); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Name != "Tamil Nadu" || len(doc.Regions) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	madurai := doc.Regions[1]
	if madurai.Name != "Madurai" || len(madurai.Places) != 1 {
		t.Fatalf("unexpected region: %+v", madurai)
	}
	want := []catalog.Category{catalog.CategoryTemple, catalog.CategoryHeritage}
	if diff := cmp.Diff(want, madurai.Places[0].Category); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestToFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := smallCatalog(t)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	if err := ToFile(ctx, c, jsonPath, FormatJSON); err != nil {
		t.Fatalf("ToFile json: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"Meenakshi Amman Temple"`)) {
		t.Error("json export missing place")
	}

	dbPath := filepath.Join(dir, "catalog.db")
	if err := ToFile(ctx, c, dbPath, FormatSQLite); err != nil {
		t.Fatalf("ToFile sqlite: %v", err)
	}
	s, err := OpenStore(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, places, _ := s.Counts(ctx); places != 3 {
		t.Errorf("places = %d, want 3", places)
	}

	if err := ToFile(ctx, c, filepath.Join(dir, "x"), Format("csv")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	if err := ToFile(ctx, nil, dbPath, FormatSQLite); !errors.Is(err, ErrNilCatalog) {
		t.Errorf("err = %v, want ErrNilCatalog", err)
	}
}
