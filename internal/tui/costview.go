package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/papapumpkin/tnguide/internal/budget"
	"github.com/papapumpkin/tnguide/internal/session"
)

// CostView holds the cost screen's local inputs. Trip length and budget
// live in the session so the quiz can set them.
type CostView struct {
	StyleIndex int
	Travelers  int
}

// NewCostView starts at the moderate style for one traveler.
func NewCostView() CostView {
	return CostView{StyleIndex: 1, Travelers: budget.MinTravelers}
}

// Style returns the selected travel style.
func (c CostView) Style() budget.Style {
	styles := budget.Styles()
	return styles[min(max(c.StyleIndex, 0), len(styles)-1)]
}

func (m *AppModel) handleCostKey(msg tea.KeyMsg) {
	snap := m.Session.Snapshot()
	n := len(budget.Styles())
	switch {
	case key.Matches(msg, m.Keys.Left):
		m.Cost.StyleIndex = (m.Cost.StyleIndex - 1 + n) % n
	case key.Matches(msg, m.Keys.Right):
		m.Cost.StyleIndex = (m.Cost.StyleIndex + 1) % n
	case key.Matches(msg, m.Keys.MoreDays):
		m.Session.SetTrip(min(snap.Days+1, budget.MaxDays), 0)
	case key.Matches(msg, m.Keys.FewerDays):
		m.Session.SetTrip(max(snap.Days-1, budget.MinDays), 0)
	case key.Matches(msg, m.Keys.MorePeople):
		m.Cost.Travelers = min(m.Cost.Travelers+1, budget.MaxTravelers)
	case key.Matches(msg, m.Keys.FewerPeople):
		m.Cost.Travelers = max(m.Cost.Travelers-1, budget.MinTravelers)
	case key.Matches(msg, m.Keys.Back):
		m.navigate(session.ScreenHome)
	}
}

func (m AppModel) renderCost() string {
	st := m.Styles
	snap := m.Session.Snapshot()
	style := m.Cost.Style()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.Title.Render("  Trip cost"))
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(budget.Styles()))
	for _, s := range budget.Styles() {
		if s == style {
			tabs = append(tabs, st.TabActive.Render(string(s)))
		} else {
			tabs = append(tabs, st.TabInactive.Render(string(s)))
		}
	}
	b.WriteString("  " + strings.Join(tabs, " "))
	b.WriteString("\n\n")

	est, err := budget.Estimate(budget.Trip{Days: snap.Days, Travelers: m.Cost.Travelers, Style: style})
	if err != nil {
		m.log.Error().Err(err).Str("style", string(style)).Msg("estimate")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n\n",
		st.DetailLabel.Render("days"), st.DetailValue.Render(fmt.Sprintf("%d", est.Days)),
		st.DetailLabel.Render("travelers"), st.DetailValue.Render(fmt.Sprintf("%d", est.Travelers)),
	))
	writeBreakdown(&b, st, est)

	if est.Within(snap.MaxBudget) {
		b.WriteString(st.Good.Render(fmt.Sprintf("  within your %s budget", rupees(snap.MaxBudget))))
	} else {
		b.WriteString(st.Bad.Render(fmt.Sprintf("  %s over your %s budget", rupees(est.Total-snap.MaxBudget), rupees(snap.MaxBudget))))
	}
	b.WriteString("\n")

	if !m.Session.IsGlobal() {
		if r, ok := m.Session.Region(); ok {
			local := budget.ForRegion(r, est.Days, est.Travelers)
			b.WriteString("\n")
			b.WriteString(st.Subtitle.Render("  " + r.Name + " at local rates"))
			b.WriteString("\n")
			writeBreakdown(&b, st, local)
		}
	}
	return b.String()
}

func writeBreakdown(b *strings.Builder, st Styles, est budget.Breakdown) {
	lines := []struct {
		name string
		val  int
	}{
		{"Accommodation", est.Accommodation},
		{"Food", est.Food},
		{"Transport", est.Transport},
		{"Activities", est.Activities},
	}
	for _, l := range lines {
		fmt.Fprintf(b, "  %s %s\n", st.DetailLabel.Render(fmt.Sprintf("%-14s", l.name)), st.DetailValue.Render(fmt.Sprintf("%12s", rupees(l.val))))
	}
	fmt.Fprintf(b, "  %s %s\n", st.DetailTitle.Render(fmt.Sprintf("%-14s", "Total")), st.DetailTitle.Render(fmt.Sprintf("%12s", rupees(est.Total))))
}

// rupees formats n with the rupee sign and Indian digit grouping.
func rupees(n int) string {
	return "₹" + message.NewPrinter(language.MustParse("en-IN")).Sprintf("%d", n)
}
