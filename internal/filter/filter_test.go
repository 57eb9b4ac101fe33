package filter

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

func names(ps []catalog.Place) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func place(name string, rating float64, reviews int, cats ...catalog.Category) catalog.Place {
	return catalog.Place{Name: name, Rating: rating, ReviewCount: reviews, Category: cats}
}

func TestApply_RatingStable(t *testing.T) {
	t.Parallel()

	list := []catalog.Place{
		place("A", 4.2, 0),
		place("B", 4.8, 0),
		place("C", 4.8, 0),
	}
	got := Apply(list, catalog.CategoryAll, SortRating)
	if diff := cmp.Diff([]string{"B", "C", "A"}, names(got)); diff != "" {
		t.Errorf("rating sort mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_Sorts(t *testing.T) {
	t.Parallel()

	list := []catalog.Place{
		place("marina Beach", 4.5, 120),
		place("Arignar Anna Zoo", 0, 900),
		place("Zoo Park", 4.9, 0),
		place("Elliot Beach", 4.5, 900),
		place("Ashtalakshmi Temple", 3.0, 40),
	}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortRecommended, []string{"marina Beach", "Arignar Anna Zoo", "Zoo Park", "Elliot Beach", "Ashtalakshmi Temple"}},
		{SortRating, []string{"Zoo Park", "marina Beach", "Elliot Beach", "Ashtalakshmi Temple", "Arignar Anna Zoo"}},
		{SortReviews, []string{"Arignar Anna Zoo", "Elliot Beach", "marina Beach", "Ashtalakshmi Temple", "Zoo Park"}},
		{SortName, []string{"Arignar Anna Zoo", "Ashtalakshmi Temple", "Elliot Beach", "marina Beach", "Zoo Park"}},
		{SortKey("bogus"), []string{"marina Beach", "Arignar Anna Zoo", "Zoo Park", "Elliot Beach", "Ashtalakshmi Temple"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, names(Apply(list, catalog.CategoryAll, tt.key))); diff != "" {
				t.Errorf("Apply(%s) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestApply_RatingNonIncreasing(t *testing.T) {
	t.Parallel()

	got := Apply(catalog.MustDefault().AllPlaces(), catalog.CategoryAll, SortRating)
	for i := 1; i < len(got); i++ {
		if got[i].Rating > got[i-1].Rating {
			t.Fatalf("rating increases at %d: %v after %v", i, got[i].Rating, got[i-1].Rating)
		}
	}
}

func TestApply_IdentityForAllRecommended(t *testing.T) {
	t.Parallel()

	all := catalog.MustDefault().AllPlaces()
	got := Apply(all, catalog.CategoryAll, SortRecommended)
	if diff := cmp.Diff(names(all), names(got)); diff != "" {
		t.Errorf("identity pass-through changed order (-want +got):\n%s", diff)
	}
}

func TestApply_CategoryFilter(t *testing.T) {
	t.Parallel()

	all := catalog.MustDefault().AllPlaces()
	for _, tag := range catalog.Vocabulary() {
		for _, opt := range SortKeys() {
			got := Apply(all, tag, opt.Key)
			if len(got) > len(all) {
				t.Errorf("%s/%s: filtered list longer than input", tag, opt.Key)
			}
			for _, p := range got {
				if !p.HasCategory(tag) {
					t.Errorf("%s/%s: %q lacks the tag", tag, opt.Key, p.Name)
				}
			}
		}
	}
}

func TestApply_UntaggedExcludedUnderFilter(t *testing.T) {
	t.Parallel()

	list := []catalog.Place{place("Bare", 4, 1), place("Shore", 4, 1, catalog.CategoryBeach)}
	if diff := cmp.Diff([]string{"Shore"}, names(Apply(list, catalog.CategoryBeach, SortRecommended))); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	list := []catalog.Place{
		place("C", 3.0, 1, catalog.CategoryTemple),
		place("B", 4.0, 2, catalog.CategoryBeach),
		place("A", 5.0, 3, catalog.CategoryTemple),
	}
	before := slices.Clone(list)

	for _, opt := range SortKeys() {
		_ = Apply(list, catalog.CategoryTemple, opt.Key)
		_ = Apply(list, catalog.CategoryAll, opt.Key)
	}
	if diff := cmp.Diff(before, list); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}

	out := Apply(list, catalog.CategoryAll, SortRecommended)
	out[0].Name = "changed"
	if list[0].Name != "C" {
		t.Error("output aliases the input slice")
	}
}

func TestApply_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Apply(nil, catalog.CategoryTemple, SortName)
	if got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %#v, want empty non-nil slice", got)
	}
}

// The three-region listing: exploring the global aggregate with a temple
// filter keeps exactly the temples, in region-then-list order.
func TestApply_GlobalTempleListing(t *testing.T) {
	t.Parallel()

	f := catalog.File{
		Name:          "Tamil Nadu",
		DefaultRegion: "Alpha",
		Regions: []catalog.RawRegion{
			{Name: "Alpha", Weather: catalog.Weather{Condition: "Sunny"}, Places: []catalog.RawPlace{{Name: "Alpha Beach"}, {Name: "Alpha Temple"}}},
			{Name: "Beta", Weather: catalog.Weather{Condition: "Sunny"}, Places: []catalog.RawPlace{{Name: "Beta Temple"}, {Name: "Beta Beach"}}},
			{Name: "Gamma", Weather: catalog.Weather{Condition: "Sunny"}, Places: []catalog.RawPlace{{Name: "Gamma Beach"}, {Name: "Gamma Temple"}}},
		},
	}
	c, err := catalog.New(f, "test")
	if err != nil {
		t.Fatal(err)
	}
	global, err := c.Places(c.GlobalKey())
	if err != nil {
		t.Fatal(err)
	}

	got := Apply(global, catalog.CategoryTemple, SortRecommended)
	if diff := cmp.Diff([]string{"Alpha Temple", "Beta Temple", "Gamma Temple"}, names(got)); diff != "" {
		t.Errorf("temple listing mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := map[string]SortKey{
		"rating":      SortRating,
		" Reviews ":   SortReviews,
		"NAME":        SortName,
		"recommended": SortRecommended,
		"price":       SortRecommended,
		"":            SortRecommended,
	}
	for in, want := range tests {
		if got := ParseSortKey(in); got != want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortKeyLabelAndNext(t *testing.T) {
	t.Parallel()

	wantLabels := []string{"Recommended", "Highest Rated", "Most Reviewed", "Alphabetical"}
	var labels []string
	k := SortRecommended
	for range SortKeys() {
		labels = append(labels, k.Label())
		k = k.Next()
	}
	if diff := cmp.Diff(wantLabels, labels); diff != "" {
		t.Errorf("label cycle mismatch (-want +got):\n%s", diff)
	}
	if k != SortRecommended {
		t.Errorf("Next did not wrap around, ended on %q", k)
	}
}

func TestChain_RunsStagesInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	c := &Chain{Stages: []Stage{
		{Name: "first", Fn: func(ps []catalog.Place) []catalog.Place { order = append(order, "first"); return ps[1:] }},
		{Name: "second", Fn: func(ps []catalog.Place) []catalog.Place { order = append(order, "second"); return ps }},
	}}
	got := c.Run([]catalog.Place{place("x", 0, 0), place("y", 0, 0)})

	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("stage order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y"}, names(got)); diff != "" {
		t.Errorf("chain output mismatch (-want +got):\n%s", diff)
	}
}
