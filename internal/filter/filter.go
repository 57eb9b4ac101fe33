// Package filter narrows and orders place listings for display. The
// pipeline is a category filter followed by a stable sort; it never errors
// and never mutates the slice it is given.
package filter

import (
	"strings"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// SortKey selects the listing order.
type SortKey string

// Sort keys in menu order.
const (
	SortRecommended SortKey = "recommended" // catalog order
	SortRating      SortKey = "rating"      // highest rated first
	SortReviews     SortKey = "reviews"     // most reviewed first
	SortName        SortKey = "name"        // alphabetical
)

// SortOption pairs a sort key with its menu label.
type SortOption struct {
	Key   SortKey
	Label string
}

var sortOptions = []SortOption{
	{SortRecommended, "Recommended"},
	{SortRating, "Highest Rated"},
	{SortReviews, "Most Reviewed"},
	{SortName, "Alphabetical"},
}

// SortKeys returns the sort options in menu order.
func SortKeys() []SortOption {
	out := make([]SortOption, len(sortOptions))
	copy(out, sortOptions)
	return out
}

// ParseSortKey maps s to a known key. Unknown input falls back to
// SortRecommended rather than failing.
func ParseSortKey(s string) SortKey {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range sortOptions {
		if string(o.Key) == s {
			return o.Key
		}
	}
	return SortRecommended
}

// Label returns the menu label for k.
func (k SortKey) Label() string {
	for _, o := range sortOptions {
		if o.Key == k {
			return o.Label
		}
	}
	return sortOptions[0].Label
}

// Next cycles to the following sort key in menu order.
func (k SortKey) Next() SortKey {
	for i, o := range sortOptions {
		if o.Key == k {
			return sortOptions[(i+1)%len(sortOptions)].Key
		}
	}
	return SortRecommended
}

// Apply filters places by category and sorts them by key. CategoryAll keeps
// every place. The result is always a fresh slice.
func Apply(places []catalog.Place, category catalog.Category, key SortKey) []catalog.Place {
	return DefaultChain(category, key).Run(places)
}
