// Package catalog holds the static destination data: an ordered, immutable
// mapping from region name to its enriched places. A Catalog is built once
// from a catalog file and never changes afterwards; a reloaded file produces
// a new Catalog.
package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Catalog is the read-only Region→Place dataset. It is safe for concurrent
// readers.
type Catalog struct {
	name          string
	defaultRegion string
	regions       []*Region
	index         map[string]int // region name → position in regions
	placeNames    map[string]bool

	allOnce sync.Once
	all     []Place
}

// New validates f and builds a Catalog, enriching every place once.
func New(f File, source string) (*Catalog, error) {
	if errs := Validate(f, source); len(errs) > 0 {
		return nil, joinValidation(errs)
	}

	c := &Catalog{
		name:          f.Name,
		defaultRegion: f.DefaultRegion,
		regions:       make([]*Region, 0, len(f.Regions)),
		index:         make(map[string]int, len(f.Regions)),
		placeNames:    make(map[string]bool),
	}
	for _, raw := range f.Regions {
		r := &Region{
			Name:           raw.Name,
			Places:         make([]Place, 0, len(raw.Places)),
			TravelCost:     raw.TravelCost,
			StayCostPerDay: raw.StayCostPerDay,
			FoodCostPerDay: raw.FoodCostPerDay,
			Weather:        raw.Weather,
			MapURL:         raw.MapURL,
			MapEmbedURL:    raw.MapEmbedURL,
			Coordinates:    raw.Coordinates,
			Tourism:        raw.Tourism,
		}
		if len(raw.WeatherRecommendations) > 0 {
			r.WeatherRecommendations = maps.Clone(raw.WeatherRecommendations)
		}
		for i, rp := range raw.Places {
			p := Enrich(rp, i, raw.Name)
			r.Places = append(r.Places, p)
			c.placeNames[p.Name] = true
		}
		c.index[r.Name] = len(c.regions)
		c.regions = append(c.regions, r)
	}
	return c, nil
}

// Name is the catalog's display name. It doubles as the global pseudo-key.
func (c *Catalog) Name() string { return c.name }

// GlobalKey is the pseudo region key addressing every place in the catalog.
func (c *Catalog) GlobalKey() string { return c.name }

// IsGlobal reports whether key addresses the global aggregate.
func (c *Catalog) IsGlobal(key string) bool { return key == c.name }

// DefaultRegion is the region a fresh session starts on.
func (c *Catalog) DefaultRegion() string { return c.defaultRegion }

// Keys returns the region names in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.regions))
	for i, r := range c.regions {
		keys[i] = r.Name
	}
	return keys
}

// Regions returns the regions in catalog order. Callers must treat the
// returned regions as read-only.
func (c *Catalog) Regions() []*Region {
	return slices.Clone(c.regions)
}

// Len returns the number of regions.
func (c *Catalog) Len() int { return len(c.regions) }

// Region returns the region stored under key. Keys are case-sensitive here;
// use Lookup for user-typed text.
func (c *Catalog) Region(key string) (*Region, error) {
	i, ok := c.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, key)
	}
	return c.regions[i], nil
}

// Lookup resolves key case-insensitively to its stored spelling.
func (c *Catalog) Lookup(key string) (string, bool) {
	if _, ok := c.index[key]; ok {
		return key, true
	}
	for _, r := range c.regions {
		if strings.EqualFold(r.Name, key) {
			return r.Name, true
		}
	}
	return "", false
}

// AllPlaces returns every place in region order, then list order. The
// flattened list is built once and cached; each call returns a fresh copy.
func (c *Catalog) AllPlaces() []Place {
	c.allOnce.Do(func() {
		n := 0
		for _, r := range c.regions {
			n += len(r.Places)
		}
		c.all = make([]Place, 0, n)
		for _, r := range c.regions {
			c.all = append(c.all, r.Places...)
		}
	})
	return slices.Clone(c.all)
}

// Places returns the listing addressable by key: a region's places, or every
// place for the global key.
func (c *Catalog) Places(key string) ([]Place, error) {
	if c.IsGlobal(key) {
		return c.AllPlaces(), nil
	}
	r, err := c.Region(key)
	if err != nil {
		return nil, err
	}
	return slices.Clone(r.Places), nil
}

// HasPlace reports whether any region holds a place with this exact name.
func (c *Catalog) HasPlace(name string) bool {
	return c.placeNames[name]
}

// Contains reports whether p is part of the listing addressable by key.
func (c *Catalog) Contains(key string, p Place) bool {
	if !c.IsGlobal(key) && p.District != key {
		return false
	}
	r, err := c.Region(p.District)
	if err != nil {
		return false
	}
	for _, have := range r.Places {
		if have.Name == p.Name {
			return true
		}
	}
	return false
}

// PlaceCount returns the number of places across all regions.
func (c *Catalog) PlaceCount() int {
	n := 0
	for _, r := range c.regions {
		n += len(r.Places)
	}
	return n
}
