package filter

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// Stage is a single named step in the listing pipeline. A stage may reorder
// or shrink the slice it receives, which is always owned by the chain.
type Stage struct {
	Name string
	Fn   func(places []catalog.Place) []catalog.Place
}

// Chain runs stages sequentially over a private copy of the input.
type Chain struct {
	Stages []Stage
}

// Run copies places and passes the copy through every stage in order.
func (c *Chain) Run(places []catalog.Place) []catalog.Place {
	out := slices.Clone(places)
	if out == nil {
		out = []catalog.Place{}
	}
	for _, s := range c.Stages {
		out = s.Fn(out)
	}
	return out
}

// DefaultChain returns the standard listing pipeline: category, then sort.
func DefaultChain(category catalog.Category, key SortKey) *Chain {
	return &Chain{Stages: []Stage{
		{Name: "category", Fn: categoryStage(category)},
		{Name: "sort", Fn: sortStage(key)},
	}}
}

// categoryStage keeps places tagged with category. CategoryAll and the empty
// category keep everything.
func categoryStage(category catalog.Category) func([]catalog.Place) []catalog.Place {
	return func(places []catalog.Place) []catalog.Place {
		if category == catalog.CategoryAll || category == "" {
			return places
		}
		return slices.DeleteFunc(places, func(p catalog.Place) bool {
			return !p.HasCategory(category)
		})
	}
}

// sortStage orders places stably by key. Unknown keys leave the order alone.
func sortStage(key SortKey) func([]catalog.Place) []catalog.Place {
	return func(places []catalog.Place) []catalog.Place {
		switch key {
		case SortRating:
			slices.SortStableFunc(places, func(a, b catalog.Place) int {
				return cmp.Compare(b.Rating, a.Rating)
			})
		case SortReviews:
			slices.SortStableFunc(places, func(a, b catalog.Place) int {
				return cmp.Compare(b.ReviewCount, a.ReviewCount)
			})
		case SortName:
			// Collators keep internal buffers and are not safe for concurrent
			// use, so each sort gets its own.
			col := collate.New(language.English, collate.IgnoreCase)
			slices.SortStableFunc(places, func(a, b catalog.Place) int {
				return col.CompareString(a.Name, b.Name)
			})
		}
		return places
	}
}
