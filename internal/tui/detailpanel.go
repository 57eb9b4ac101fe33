package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// DetailPanel wraps a viewport for the scrollable place detail modal.
type DetailPanel struct {
	viewport   viewport.Model
	title      string
	totalLines int // total lines of content (before viewport clipping)
}

// NewDetailPanel creates a detail panel with the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return DetailPanel{viewport: vp}
}

// SetSize updates the viewport dimensions.
func (d *DetailPanel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = max(1, height)
}

// SetContent updates the displayed text and title.
func (d *DetailPanel) SetContent(title, content string) {
	d.title = title
	d.totalLines = strings.Count(content, "\n") + 1
	d.viewport.SetContent(content)
	d.viewport.GotoTop()
}

// SetPlace shows p.
func (d *DetailPanel) SetPlace(p catalog.Place, favorite bool, st Styles) {
	title := p.Name
	if favorite {
		title += " " + st.Favorite.Render(iconFavorite)
	}
	d.SetContent(title, FormatPlace(p, st))
}

// Update handles viewport scroll messages.
// Home/g and End/G are handled explicitly because the viewport's built-in
// KeyMap does not bind those keys.
func (d *DetailPanel) Update(msg tea.Msg) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "home", "g":
			d.viewport.GotoTop()
			return
		case "end", "G":
			d.viewport.GotoBottom()
			return
		}
	}
	d.viewport, _ = d.viewport.Update(msg)
}

// View renders the detail panel with a rounded border and scroll indicators.
func (d DetailPanel) View(st Styles) string {
	var b strings.Builder
	if d.title != "" {
		b.WriteString(st.DetailTitle.Render(d.title))
		b.WriteString("\n")
	}
	if up := d.linesAbove(); up > 0 {
		b.WriteString(st.Scroll.Render(fmt.Sprintf("↑ %d more", up)))
		b.WriteString("\n")
	}
	b.WriteString(d.viewport.View())
	if down := d.linesBelow(); down > 0 {
		b.WriteString("\n")
		b.WriteString(st.Scroll.Render(fmt.Sprintf("↓ %d more", down)))
	}
	return st.DetailBorder.Render(b.String())
}

// linesAbove returns the number of content lines above the viewport.
func (d DetailPanel) linesAbove() int {
	return d.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	return max(0, d.totalLines-d.viewport.YOffset-d.viewport.Height)
}

// FormatPlace renders the body of the detail modal.
func FormatPlace(p catalog.Place, st Styles) string {
	label := st.DetailLabel.Render
	value := st.DetailValue.Render

	var b strings.Builder
	b.WriteString(label("district: "))
	b.WriteString(value(p.District))
	if p.Badge != "" {
		b.WriteString("  ")
		b.WriteString(st.Badge.Render(p.Badge))
	}
	b.WriteString("\n")
	b.WriteString(st.Rating.Render(fmt.Sprintf("%s %.1f", iconStar, p.Rating)))
	b.WriteString(label(fmt.Sprintf(" (%d reviews)", p.ReviewCount)))
	b.WriteString("\n")
	if len(p.Category) > 0 {
		tags := make([]string, len(p.Category))
		for i, c := range p.Category {
			tags[i] = string(c)
		}
		b.WriteString(label("categories: "))
		b.WriteString(value(strings.Join(tags, ", ")))
		b.WriteString("\n")
	}
	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(value(p.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := []struct{ k, v string }{
		{"Entry fee", p.EntryFee},
		{"Duration", p.Duration},
		{"Opening hours", p.OpeningHours},
		{"Best time", p.BestTime},
		{"Tip", p.VisitorTips},
	}
	for _, r := range rows {
		b.WriteString(label(fmt.Sprintf("%-14s", r.k)))
		b.WriteString(value(r.v))
		b.WriteString("\n")
	}
	if len(p.Images) > 0 {
		b.WriteString(label(fmt.Sprintf("%-14s", "Photos")))
		b.WriteString(value(fmt.Sprintf("%d", len(p.Images)+1)))
		b.WriteString("\n")
	}
	b.WriteString(label(fmt.Sprintf("%-14s", "Image")))
	b.WriteString(st.Dim.Render(p.Image))
	return b.String()
}
