// Package budget estimates trip costs in rupees. Estimates come either from
// a travel style, priced per person per day, or from a region's own cost
// figures in the catalog.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// ErrUnknownStyle indicates a travel style outside the style table.
var ErrUnknownStyle = errors.New("unknown travel style")

// Style names a travel style.
type Style string

// Travel styles, cheapest first.
const (
	StyleBudget   Style = "Budget Friendly"
	StyleModerate Style = "Moderate"
	StyleLuxury   Style = "Luxury"
)

// Rates is a per person, per day cost for each expense line.
type Rates struct {
	Accommodation int
	Food          int
	Transport     int
	Activities    int
}

var rates = map[Style]Rates{
	StyleBudget:   {Accommodation: 800, Food: 500, Transport: 300, Activities: 200},
	StyleModerate: {Accommodation: 2500, Food: 1200, Transport: 800, Activities: 1000},
	StyleLuxury:   {Accommodation: 7000, Food: 3000, Transport: 2500, Activities: 3000},
}

// Trip bounds.
const (
	MinDays      = 1
	MaxDays      = 30
	MinTravelers = 1
	MaxTravelers = 20
)

// Styles returns the travel styles, cheapest first.
func Styles() []Style { return []Style{StyleBudget, StyleModerate, StyleLuxury} }

// ParseStyle matches s case-insensitively against the style names. The
// short forms "budget", "moderate" and "luxury" are accepted too.
func ParseStyle(s string) (Style, error) {
	s = strings.TrimSpace(s)
	for _, st := range Styles() {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, st.Short()) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Short is the style name without the "Friendly" suffix.
func (s Style) Short() string {
	return strings.TrimSuffix(string(s), " Friendly")
}

// RatesFor returns the daily rates of a style.
func RatesFor(s Style) (Rates, error) {
	r, ok := rates[s]
	if !ok {
		return Rates{}, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
	return r, nil
}

// Trip describes who travels, for how long, and how.
type Trip struct {
	Days      int
	Travelers int
	Style     Style
}

// Breakdown is an itemised estimate. Days and Travelers hold the values the
// estimate was computed with, after clamping.
type Breakdown struct {
	Accommodation int
	Food          int
	Transport     int
	Activities    int
	Total         int
	Days          int
	Travelers     int
}

// Within reports whether the total fits in maxBudget.
func (b Breakdown) Within(maxBudget int) bool { return b.Total <= maxBudget }

// Estimate prices a trip from the style table. Days are clamped to 1-30 and
// travelers to 1-20.
func Estimate(t Trip) (Breakdown, error) {
	r, err := RatesFor(t.Style)
	if err != nil {
		return Breakdown{}, err
	}
	days := clamp(t.Days, MinDays, MaxDays)
	people := clamp(t.Travelers, MinTravelers, MaxTravelers)
	units := days * people

	b := Breakdown{
		Accommodation: r.Accommodation * units,
		Food:          r.Food * units,
		Transport:     r.Transport * units,
		Activities:    r.Activities * units,
		Days:          days,
		Travelers:     people,
	}
	b.Total = b.Accommodation + b.Food + b.Transport + b.Activities
	return b, nil
}

// ForRegion prices a trip from a region's catalog figures: the travel cost
// once per traveler, plus stay and food per day per traveler. Activities are
// not priced by the catalog and stay zero.
func ForRegion(region *catalog.Region, days, travelers int) Breakdown {
	days = clamp(days, MinDays, MaxDays)
	travelers = clamp(travelers, MinTravelers, MaxTravelers)
	b := Breakdown{Days: days, Travelers: travelers}
	if region == nil {
		return b
	}
	b.Transport = region.TravelCost * travelers
	b.Accommodation = region.StayCostPerDay * days * travelers
	b.Food = region.FoodCostPerDay * days * travelers
	b.Total = b.Transport + b.Accommodation + b.Food
	return b
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
