// Package ui renders one-shot command output for the terminal. Results go
// to stdout; banners, progress and errors go to stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/papapumpkin/tnguide/internal/ansi"
	"github.com/papapumpkin/tnguide/internal/budget"
	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/search"
	"github.com/papapumpkin/tnguide/internal/weather"
)

// Printer writes styled text. UseColor controls whether ANSI escape codes
// are emitted.
type Printer struct {
	out      io.Writer
	err      io.Writer
	UseColor bool
	num      *message.Printer
}

// New returns a Printer on stdout and stderr with color enabled.
func New() *Printer {
	return NewTo(os.Stdout, os.Stderr, true)
}

// NewTo returns a Printer on the given writers.
func NewTo(out, errOut io.Writer, color bool) *Printer {
	return &Printer{
		out:      out,
		err:      errOut,
		UseColor: color,
		num:      message.NewPrinter(language.MustParse("en-IN")),
	}
}

// c wraps s in the given SGR codes when color is on.
func (p *Printer) c(s string, codes ...string) string {
	if !p.UseColor || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansi.Reset
}

// Rupees formats an amount with the rupee sign and digit grouping.
func (p *Printer) Rupees(n int) string {
	return "₹" + p.num.Sprintf("%d", n)
}

// Banner prints the title box to stderr.
func (p *Printer) Banner() {
	fmt.Fprintln(p.err, p.c("  ╔═══════════════════════════════════╗", ansi.Bold, ansi.Yellow))
	fmt.Fprintln(p.err, p.c("  ║", ansi.Bold, ansi.Yellow)+p.c("   TAMIL NADU  ", ansi.Bold)+p.c("travel guide", ansi.Dim)+p.c("        ║", ansi.Bold, ansi.Yellow))
	fmt.Fprintln(p.err, p.c("  ╚═══════════════════════════════════╝", ansi.Bold, ansi.Yellow))
	fmt.Fprintln(p.err)
}

// Error prints an error line to stderr.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.err, "%s%s\n", p.c("error: ", ansi.Red, ansi.Bold), msg)
}

// Info prints a dimmed status line to stderr.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.err, p.c(msg, ansi.Dim))
}

// SearchResult prints what a query resolved to.
func (p *Printer) SearchResult(query string, res search.Result) {
	switch res.Kind {
	case search.KindRegion:
		fmt.Fprintf(p.out, "%s %s\n", p.c("◆ region", ansi.Cyan), res.RegionKey)
	case search.KindPlace:
		fmt.Fprintf(p.out, "%s %s %s\n", p.c("◆ place", ansi.Green), res.Place.Name, p.c("in "+res.RegionKey, ansi.Dim))
		p.placeDetail(res.Place)
	default:
		fmt.Fprintf(p.out, "%s No guide found for %q. Try Chennai, Ooty, or Madurai.\n", p.c("✗", ansi.Red, ansi.Bold), strings.TrimSpace(query))
	}
}

// Suggestions prints a numbered suggestion list.
func (p *Printer) Suggestions(results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(p.out, p.c("  (no suggestions)", ansi.Dim))
		return
	}
	for i, r := range results {
		kind := p.c(fmt.Sprintf("%-6s", r.Kind), ansi.Dim)
		fmt.Fprintf(p.out, "  %2d. %s %s\n", i+1, kind, r.Label())
	}
}

func (p *Printer) placeDetail(pl catalog.Place) {
	if pl.Description != "" {
		fmt.Fprintf(p.out, "    %s\n", pl.Description)
	}
	fmt.Fprintf(p.out, "    rating:  %.1f (%d reviews)\n", pl.Rating, pl.ReviewCount)
	fmt.Fprintf(p.out, "    entry:   %s, %s\n", pl.EntryFee, pl.Duration)
	fmt.Fprintf(p.out, "    hours:   %s\n", pl.OpeningHours)
	fmt.Fprintf(p.out, "    best:    %s\n", pl.BestTime)
	fmt.Fprintf(p.out, "    tip:     %s\n", pl.VisitorTips)
}

// Places prints a listing, one place per line.
func (p *Printer) Places(title string, places []catalog.Place) {
	fmt.Fprintf(p.out, "%s %s\n", p.c(title, ansi.Bold, ansi.Cyan), p.c(fmt.Sprintf("(%d)", len(places)), ansi.Dim))
	if len(places) == 0 {
		fmt.Fprintln(p.out, p.c("  No places match this filter.", ansi.Dim))
		return
	}
	for _, pl := range places {
		badge := ""
		if pl.Badge != "" {
			badge = " " + p.c("["+pl.Badge+"]", ansi.Yellow)
		}
		fmt.Fprintf(p.out, "  %-36s %s %4.1f  %-14s %s%s\n",
			pl.Name, p.c("★", ansi.Yellow), pl.Rating, pl.District, categoryList(pl.Category), badge)
	}
}

// MapLink prints a region's map link below its listing.
func (p *Printer) MapLink(url string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.c("map:", ansi.Dim), url)
}

func categoryList(cs []catalog.Category) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// Budget prints an itemised estimate and whether it fits maxBudget. A
// non-positive maxBudget skips the comparison.
func (p *Printer) Budget(label string, b budget.Breakdown, maxBudget int) {
	people := "person"
	if b.Travelers > 1 {
		people = "persons"
	}
	fmt.Fprintf(p.out, "%s %s\n", p.c(label, ansi.Bold, ansi.Cyan),
		p.c(fmt.Sprintf("for %d %s, %d days", b.Travelers, people, b.Days), ansi.Dim))
	lines := []struct {
		name string
		val  int
	}{
		{"Accommodation", b.Accommodation},
		{"Food & Dining", b.Food},
		{"Transport", b.Transport},
		{"Activities", b.Activities},
	}
	for _, l := range lines {
		fmt.Fprintf(p.out, "  %-14s %12s\n", l.name, p.Rupees(l.val))
	}
	fmt.Fprintf(p.out, "  %-14s %12s\n", "Total", p.c(p.Rupees(b.Total), ansi.Bold))
	if maxBudget <= 0 {
		return
	}
	if b.Within(maxBudget) {
		fmt.Fprintf(p.out, "%s within your %s budget\n", p.c("✓", ansi.Green, ansi.Bold), p.Rupees(maxBudget))
	} else {
		fmt.Fprintf(p.out, "%s over your %s budget by %s\n", p.c("✗", ansi.Red, ansi.Bold),
			p.Rupees(maxBudget), p.Rupees(b.Total-maxBudget))
	}
}

// Weather prints a report and its weekly forecast.
func (p *Printer) Weather(r weather.Report) {
	fmt.Fprintf(p.out, "%s %s %d°C %s\n", p.c(r.Key, ansi.Bold, ansi.Cyan), r.Icon, r.Temp, r.Condition)
	if r.Recommendation != "" {
		fmt.Fprintf(p.out, "  %s\n", p.c(r.Recommendation, ansi.Dim))
	}
	for _, d := range r.Forecast {
		fmt.Fprintf(p.out, "  %s  %s %3d°C  %s\n", d.Name, weather.Icon(d.Condition), d.Temp, d.Condition)
	}
}

// ValidateResult reports a catalog check. errs are the individual problems
// when validation failed.
func (p *Printer) ValidateResult(source string, regions, places int, errs []error) {
	if len(errs) == 0 {
		fmt.Fprintf(p.err, "%s %d region(s), %d place(s), no errors\n",
			p.c(fmt.Sprintf("✓ catalog %q:", source), ansi.Green, ansi.Bold), regions, places)
		return
	}
	fmt.Fprintf(p.err, "%s %d error(s):\n", p.c(fmt.Sprintf("✗ catalog %q", source), ansi.Red, ansi.Bold), len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.err, "  %s%s\n", p.c("• ", ansi.Red), e)
	}
}

// ExportDone reports a finished export.
func (p *Printer) ExportDone(path, format string, regions, places int) {
	fmt.Fprintf(p.err, "%s %s (%s): %d region(s), %d place(s)\n",
		p.c("✓ exported", ansi.Green, ansi.Bold), path, format, regions, places)
}
