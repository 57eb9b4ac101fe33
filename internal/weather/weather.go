// Package weather builds the weather screen from the static conditions
// stored in the catalog. Forecasts are synthetic: a fixed weekly pattern
// applied to the region's base temperature.
package weather

import (
	"math"
	"strings"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// ConditionVaried is reported for the statewide aggregate.
const ConditionVaried = "Varied"

// Icons by condition family.
const (
	IconRain  = "🌧"
	IconCloud = "☁"
	IconWind  = "💨"
	IconSun   = "☀"
)

// Day is one forecast entry.
type Day struct {
	Name      string
	Temp      int
	Condition string
}

var (
	dayNames   = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	offsets    = []int{0, 1, -1, 0, 2, 1, -2}
	conditions = []string{"Sunny", "Clear", "Cloudy", "Partly Cloudy", "Sunny", "Breezy", "Rainy"}
)

// Forecast returns a seven day outlook, Monday first, around base degrees
// Celsius.
func Forecast(base int) []Day {
	days := make([]Day, len(dayNames))
	for i, name := range dayNames {
		days[i] = Day{Name: name, Temp: base + offsets[i], Condition: conditions[i]}
	}
	return days
}

// Report is everything the weather screen shows for one key.
type Report struct {
	Key            string
	Temp           int
	Condition      string
	Icon           string
	Recommendation string
	Forecast       []Day
}

// ForRegion reports a region's current conditions, its advice for them and
// the weekly forecast.
func ForRegion(r *catalog.Region) Report {
	if r == nil {
		return Report{}
	}
	return Report{
		Key:            r.Name,
		Temp:           r.Weather.Temp,
		Condition:      r.Weather.Condition,
		Icon:           Icon(r.Weather.Condition),
		Recommendation: recommendation(r.WeatherRecommendations, r.Weather.Condition),
		Forecast:       Forecast(r.Weather.Temp),
	}
}

// ForCatalog reports the statewide view: the mean temperature of every
// region, rounded, under a varied condition.
func ForCatalog(cat *catalog.Catalog) Report {
	if cat == nil || cat.Len() == 0 {
		return Report{}
	}
	sum := 0
	for _, r := range cat.Regions() {
		sum += r.Weather.Temp
	}
	mean := int(math.Round(float64(sum) / float64(cat.Len())))
	return Report{
		Key:       cat.GlobalKey(),
		Temp:      mean,
		Condition: ConditionVaried,
		Icon:      Icon(ConditionVaried),
		Forecast:  Forecast(mean),
	}
}

// For reports on key, which may be a region or the catalog's global key.
// ok is false for unknown keys.
func For(cat *catalog.Catalog, key string) (Report, bool) {
	if cat == nil {
		return Report{}, false
	}
	if cat.IsGlobal(key) {
		return ForCatalog(cat), true
	}
	r, err := cat.Region(key)
	if err != nil {
		return Report{}, false
	}
	return ForRegion(r), true
}

// recommendation looks up advice for condition, ignoring case.
func recommendation(recs map[string]string, condition string) string {
	if text, ok := recs[condition]; ok {
		return text
	}
	for k, text := range recs {
		if strings.EqualFold(k, condition) {
			return text
		}
	}
	return ""
}

// Icon picks a glyph for a condition by keyword.
func Icon(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain"):
		return IconRain
	case strings.Contains(c, "cloud"), strings.Contains(c, "mist"), strings.Contains(c, "fog"):
		return IconCloud
	case strings.Contains(c, "wind"):
		return IconWind
	default:
		return IconSun
	}
}
