package budget

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		trip Trip
		want Breakdown
	}{
		{
			name: "moderate default trip",
			trip: Trip{Days: 3, Travelers: 1, Style: StyleModerate},
			want: Breakdown{Accommodation: 7500, Food: 3600, Transport: 2400, Activities: 3000, Total: 16500, Days: 3, Travelers: 1},
		},
		{
			name: "budget couple",
			trip: Trip{Days: 2, Travelers: 2, Style: StyleBudget},
			want: Breakdown{Accommodation: 3200, Food: 2000, Transport: 1200, Activities: 800, Total: 7200, Days: 2, Travelers: 2},
		},
		{
			name: "luxury single day",
			trip: Trip{Days: 1, Travelers: 1, Style: StyleLuxury},
			want: Breakdown{Accommodation: 7000, Food: 3000, Transport: 2500, Activities: 3000, Total: 15500, Days: 1, Travelers: 1},
		},
		{
			name: "clamps low",
			trip: Trip{Days: 0, Travelers: -4, Style: StyleBudget},
			want: Breakdown{Accommodation: 800, Food: 500, Transport: 300, Activities: 200, Total: 1800, Days: 1, Travelers: 1},
		},
		{
			name: "clamps high",
			trip: Trip{Days: 45, Travelers: 50, Style: StyleBudget},
			want: Breakdown{Accommodation: 480000, Food: 300000, Transport: 180000, Activities: 120000, Total: 1080000, Days: 30, Travelers: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Estimate(tt.trip)
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEstimate_UnknownStyle(t *testing.T) {
	t.Parallel()
	if _, err := Estimate(Trip{Days: 3, Travelers: 1, Style: "Backpacker"}); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("err = %v, want ErrUnknownStyle", err)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Style
	}{
		{"Budget Friendly", StyleBudget},
		{"budget", StyleBudget},
		{" MODERATE ", StyleModerate},
		{"luxury", StyleLuxury},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStyle(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseStyle("friendly"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("ParseStyle(friendly) err = %v, want ErrUnknownStyle", err)
	}
}

func TestForRegion(t *testing.T) {
	t.Parallel()

	r := &catalog.Region{Name: "Ooty", TravelCost: 1500, StayCostPerDay: 2000, FoodCostPerDay: 600}
	got := ForRegion(r, 3, 2)
	want := Breakdown{Transport: 3000, Accommodation: 12000, Food: 3600, Total: 18600, Days: 3, Travelers: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}

	if got := ForRegion(nil, 3, 2); got.Total != 0 {
		t.Errorf("nil region total = %d, want 0", got.Total)
	}
}

func TestBreakdownWithin(t *testing.T) {
	t.Parallel()

	b := Breakdown{Total: 30000}
	if !b.Within(30000) || !b.Within(50000) {
		t.Error("expected total to fit")
	}
	if b.Within(29999) {
		t.Error("expected total to exceed")
	}
}
