package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallCatalog = `
name = "Tamil Nadu"
default_region = "Chennai"

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
category = ["Temple", "heritage"]
`

func TestParse_Small(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(smallCatalog), "small.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Name() != "Tamil Nadu" || c.DefaultRegion() != "Chennai" || c.Len() != 2 {
		t.Fatalf("unexpected catalog: name=%q default=%q len=%d", c.Name(), c.DefaultRegion(), c.Len())
	}

	chennai, err := c.Region("Chennai")
	if err != nil {
		t.Fatal(err)
	}
	if chennai.TravelCost != 500 || chennai.Weather.Temp != 32 {
		t.Errorf("region fields not decoded: %+v", chennai)
	}

	madurai, _ := c.Places("Madurai")
	p := madurai[0]
	if p.Rating != 4.9 {
		t.Errorf("explicit rating = %v, want 4.9", p.Rating)
	}
	if !p.HasCategory(CategoryHeritage) || !p.HasCategory(CategoryTemple) {
		t.Errorf("explicit categories lost: %v", p.Category)
	}
	if p.District != "Madurai" {
		t.Errorf("district = %q, want Madurai", p.District)
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	data := strings.Replace(smallCatalog, `travel_cost = 500`, `travel_cots = 500`, 1)
	_, err := Decode([]byte(data), "typo.toml")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "typo.toml") {
		t.Errorf("error should name the source: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() File {
		f, err := Decode([]byte(smallCatalog), "small.toml")
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		return f
	}

	tests := []struct {
		name     string
		mutate   func(*File)
		category ValidationCategory
		sentinel error
	}{
		{
			name:     "duplicate region",
			mutate:   func(f *File) { f.Regions[1].Name = "Chennai" },
			category: ValCatDuplicateRegion,
			sentinel: ErrDuplicateRegion,
		},
		{
			name:     "duplicate place",
			mutate:   func(f *File) { f.Regions[0].Places[1].Name = "Marina Beach" },
			category: ValCatDuplicatePlace,
			sentinel: ErrDuplicatePlace,
		},
		{
			name:     "unknown category",
			mutate:   func(f *File) { f.Regions[1].Places[0].Category = []string{"Shrine"} },
			category: ValCatCategory,
			sentinel: ErrUnknownCategory,
		},
		{
			name:     "All is not a tag",
			mutate:   func(f *File) { f.Regions[1].Places[0].Category = []string{"All"} },
			category: ValCatCategory,
			sentinel: ErrUnknownCategory,
		},
		{
			name:     "missing default",
			mutate:   func(f *File) { f.DefaultRegion = "Ooty" },
			category: ValCatDefault,
			sentinel: ErrMissingDefault,
		},
		{
			name:     "negative cost",
			mutate:   func(f *File) { f.Regions[0].StayCostPerDay = -1 },
			category: ValCatField,
			sentinel: ErrInvalidField,
		},
		{
			name:     "rating out of range",
			mutate:   func(f *File) { f.Regions[1].Places[0].Rating = 5.5 },
			category: ValCatField,
			sentinel: ErrInvalidField,
		},
		{
			name:     "empty place name",
			mutate:   func(f *File) { f.Regions[0].Places[0].Name = "" },
			category: ValCatField,
			sentinel: ErrInvalidField,
		},
		{
			name:     "bad map url",
			mutate:   func(f *File) { f.Regions[0].MapURL = "not a url" },
			category: ValCatField,
			sentinel: ErrInvalidField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := base()
			tt.mutate(&f)

			errs := Validate(f, "small.toml")
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if e.Category == tt.category && errors.Is(&e, tt.sentinel) {
					found = true
				}
				if e.SourceFile != "small.toml" {
					t.Errorf("missing source context: %+v", e)
				}
			}
			if !found {
				t.Errorf("no %s error wrapping %v in %v", tt.category, tt.sentinel, errs)
			}
		})
	}
}

func TestValidate_FieldNamesUseFileSpelling(t *testing.T) {
	t.Parallel()

	f, err := Decode([]byte(smallCatalog), "small.toml")
	if err != nil {
		t.Fatal(err)
	}
	f.Regions[0].FoodCostPerDay = -5

	errs := Validate(f, "small.toml")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Field != "food_cost_per_day" || errs[0].Region != "Chennai" {
		t.Errorf("unexpected error context: %+v", errs[0])
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(path, []byte(smallCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.PlaceCount() != 3 {
		t.Errorf("PlaceCount = %d, want 3", c.PlaceCount())
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	f, err := Decode([]byte(smallCatalog), "small.toml")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	c, err := Parse(data, "encoded.toml")
	if err != nil {
		t.Fatalf("Parse(Encode(f)): %v\n%s", err, data)
	}
	if c.PlaceCount() != 3 {
		t.Errorf("PlaceCount after round trip = %d, want 3", c.PlaceCount())
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("embedded catalog invalid: %v", err)
	}
	if c.Name() != "Tamil Nadu" {
		t.Errorf("Name = %q, want Tamil Nadu", c.Name())
	}
	if c.DefaultRegion() != "Chennai" {
		t.Errorf("DefaultRegion = %q, want Chennai", c.DefaultRegion())
	}
	for _, key := range []string{"Chennai", "Madurai", "Ooty", "Coimbatore", "Krishnagiri"} {
		if _, err := c.Region(key); err != nil {
			t.Errorf("embedded catalog lacks %s: %v", key, err)
		}
	}
	if !c.HasPlace("Marina Beach") {
		t.Error("embedded catalog lacks Marina Beach")
	}

	again, _ := Default()
	if again != c {
		t.Error("Default should return the shared instance")
	}

	empty, err := Load("")
	if err != nil || empty != c {
		t.Errorf("Load(\"\") = %p, %v; want the embedded catalog", empty, err)
	}
}
