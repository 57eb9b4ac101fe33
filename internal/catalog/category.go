package catalog

import (
	"fmt"
	"strings"
)

// Category is a place tag drawn from a fixed vocabulary.
type Category string

// The category vocabulary. CategoryAll is the listing filter that keeps every
// place; it is never attached to a place.
const (
	CategoryAll         Category = "All"
	CategoryTemple      Category = "Temple"
	CategoryBeach       Category = "Beach"
	CategoryHillStation Category = "Hill Station"
	CategoryHeritage    Category = "Heritage"
	CategoryNature      Category = "Nature"
	CategoryWaterfall   Category = "Waterfall"
	CategoryAttraction  Category = "Attraction"
)

// vocabulary lists the taggable categories in display order.
var vocabulary = []Category{
	CategoryTemple,
	CategoryBeach,
	CategoryHillStation,
	CategoryHeritage,
	CategoryNature,
	CategoryWaterfall,
	CategoryAttraction,
}

// Vocabulary returns the taggable categories in display order.
func Vocabulary() []Category {
	out := make([]Category, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// FilterTabs returns the categories offered as listing filters, starting
// with CategoryAll.
func FilterTabs() []Category {
	return []Category{CategoryAll, CategoryTemple, CategoryBeach, CategoryHillStation, CategoryHeritage, CategoryNature}
}

// ParseCategory accepts a vocabulary tag or "All", matched case-insensitively,
// and returns its canonical spelling.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	for _, c := range vocabulary {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// categoryRule tags a place when its lowercased name contains any keyword.
type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules are evaluated in order; a name may collect several tags.
var categoryRules = []categoryRule{
	{CategoryTemple, []string{"temple", "kovil", "church", "mosque"}},
	{CategoryBeach, []string{"beach"}},
	{CategoryHillStation, []string{"hill", "peak", "mountain"}},
	{CategoryHeritage, []string{"fort", "palace", "museum", "heritage"}},
	{CategoryNature, []string{"park", "sanctuary", "forest", "lake", "dam"}},
	{CategoryWaterfall, []string{"falls", "waterfall"}},
}

// DeriveCategories tags a place from keywords in its name. A name matching
// no rule is an Attraction.
func DeriveCategories(name string) []Category {
	lower := strings.ToLower(name)
	var out []Category
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, rule.category)
				break
			}
		}
	}
	if len(out) == 0 {
		return []Category{CategoryAttraction}
	}
	return out
}
