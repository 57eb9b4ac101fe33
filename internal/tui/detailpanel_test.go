package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

func TestFormatPlace(t *testing.T) {
	t.Parallel()
	p := catalog.Enrich(catalog.RawPlace{
		Name:        "Meenakshi Amman Temple",
		Description: "Twin temple complex on the Vaigai.",
		Rating:      4.9,
	}, 0, "Madurai")

	out := FormatPlace(p, NewStyles(false))
	for _, want := range []string{"Madurai", "4.9", "Twin temple complex", "Entry fee", p.EntryFee, "Temple", p.VisitorTips} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatPlace missing %q", want)
		}
	}
}

func TestDetailPanelScroll(t *testing.T) {
	t.Parallel()
	st := NewStyles(false)
	d := NewDetailPanel(40, 5)

	var lines []string
	for i := range 20 {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	d.SetContent("Long", strings.Join(lines, "\n"))

	if d.linesAbove() != 0 || d.linesBelow() != 15 {
		t.Fatalf("above/below = %d/%d, want 0/15", d.linesAbove(), d.linesBelow())
	}
	if !strings.Contains(d.View(st), "↓ 15 more") {
		t.Error("expected a down indicator")
	}

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if d.linesBelow() != 0 || d.linesAbove() != 15 {
		t.Errorf("after G above/below = %d/%d, want 15/0", d.linesAbove(), d.linesBelow())
	}
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if d.linesAbove() != 0 {
		t.Errorf("after g above = %d, want 0", d.linesAbove())
	}
}

func TestDetailPanelFavoriteTitle(t *testing.T) {
	t.Parallel()
	st := NewStyles(false)
	d := NewDetailPanel(60, 20)
	p := catalog.Enrich(catalog.RawPlace{Name: "Marina Beach"}, 0, "Chennai")

	d.SetPlace(p, true, st)
	if !strings.Contains(d.View(st), iconFavorite) {
		t.Error("expected the favorite marker in the title")
	}
	d.SetPlace(p, false, st)
	if strings.Contains(d.View(st), iconFavorite) {
		t.Error("unexpected favorite marker")
	}
}
