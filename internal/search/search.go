// Package search resolves free-text queries against the catalog. Resolve
// returns the single best match; Suggest collects every match in the same
// precedence order, so the first suggestion is always the resolved result.
//
// Precedence: an exact region name, then region names containing the query
// in catalog order, then place names containing the query in catalog order.
// Region matches always outrank place matches.
package search

import (
	"errors"
	"iter"
	"strings"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// ErrEmptyQuery indicates a query that is blank after trimming.
var ErrEmptyQuery = errors.New("empty query")

// Kind classifies a resolution result.
type Kind int

const (
	// KindNone means nothing matched.
	KindNone Kind = iota
	// KindRegion means the query named a region.
	KindRegion
	// KindPlace means the query named a place; RegionKey is its district.
	KindPlace
)

// String returns the lowercase kind name used in logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindPlace:
		return "place"
	default:
		return "none"
	}
}

// Result is the outcome of resolving a query. Place is only meaningful when
// Kind is KindPlace.
type Result struct {
	Kind      Kind
	RegionKey string
	Place     catalog.Place
}

// Label is a one-line description suitable for a suggestion list.
func (r Result) Label() string {
	switch r.Kind {
	case KindRegion:
		return r.RegionKey
	case KindPlace:
		return r.Place.Name + " (" + r.RegionKey + ")"
	default:
		return ""
	}
}

// Normalize trims and case-folds a query. A blank query yields ErrEmptyQuery.
func Normalize(query string) (string, error) {
	folded := strings.ToLower(strings.TrimSpace(query))
	if folded == "" {
		return "", ErrEmptyQuery
	}
	return folded, nil
}

// Resolver matches queries against one catalog. It holds no mutable state
// and may be shared.
type Resolver struct {
	cat *catalog.Catalog
}

// New returns a Resolver over cat.
func New(cat *catalog.Catalog) Resolver {
	return Resolver{cat: cat}
}

// Resolve returns the first match for query, or a KindNone result. It never
// panics and is idempotent.
func (r Resolver) Resolve(query string) Result {
	folded, err := Normalize(query)
	if err != nil {
		return Result{Kind: KindNone}
	}
	for res := range r.matches(folded) {
		return res
	}
	return Result{Kind: KindNone}
}

// Suggest returns up to limit distinct matches in resolution order. A limit
// of zero or less means no cap.
func (r Resolver) Suggest(query string, limit int) []Result {
	folded, err := Normalize(query)
	if err != nil {
		return nil
	}
	var out []Result
	for res := range r.matches(folded) {
		out = append(out, res)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// matches yields every match for an already normalized query in precedence
// order. Each region and each place is yielded at most once.
func (r Resolver) matches(folded string) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		if r.cat == nil {
			return
		}
		regions := r.cat.Regions()

		exact := ""
		for _, reg := range regions {
			if strings.ToLower(reg.Name) == folded {
				exact = reg.Name
				if !yield(Result{Kind: KindRegion, RegionKey: reg.Name}) {
					return
				}
				break
			}
		}

		for _, reg := range regions {
			if reg.Name == exact {
				continue
			}
			if contains(reg.Name, folded) {
				if !yield(Result{Kind: KindRegion, RegionKey: reg.Name}) {
					return
				}
			}
		}

		for _, reg := range regions {
			for _, p := range reg.Places {
				if contains(p.Name, folded) {
					if !yield(Result{Kind: KindPlace, RegionKey: reg.Name, Place: p}) {
						return
					}
				}
			}
		}
	}
}

// contains is the shared matching predicate: case-folded substring.
func contains(name, folded string) bool {
	return strings.Contains(strings.ToLower(name), folded)
}
