package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/session"
)

func (m *AppModel) handlePlacesKey(msg tea.KeyMsg) {
	listing := m.Session.Listing()
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Cursor = max(0, m.Cursor-1)
	case key.Matches(msg, m.Keys.Down):
		m.Cursor = min(len(listing)-1, m.Cursor+1)
		m.Cursor = max(0, m.Cursor)
	case key.Matches(msg, m.Keys.Left):
		m.cycleCategory(-1)
	case key.Matches(msg, m.Keys.Right):
		m.cycleCategory(1)
	case key.Matches(msg, m.Keys.Sort):
		m.Session.SetSort(m.Session.Snapshot().Sort.Next())
		m.Cursor = 0
	case key.Matches(msg, m.Keys.Map):
		if _, ok := m.regionMap(); ok {
			m.MapView = !m.MapView
		}
	case key.Matches(msg, m.Keys.Favorite):
		if m.Cursor < len(listing) {
			m.toggleFavorite(listing[m.Cursor].Name)
		}
	case key.Matches(msg, m.Keys.Enter):
		if m.Cursor < len(listing) {
			if err := m.Session.OpenDetail(listing[m.Cursor]); err != nil {
				m.log.Error().Err(err).Msg("open detail")
				return
			}
			m.syncDetail()
		}
	case key.Matches(msg, m.Keys.Back):
		m.navigate(session.ScreenHome)
	}
}

// cycleCategory moves to the neighbouring category tab. Tabs are
// statewide, so this also switches to the global listing.
func (m *AppModel) cycleCategory(step int) {
	tabs := catalog.FilterTabs()
	i := max(0, slices.Index(tabs, m.Session.Snapshot().Category))
	next := tabs[((i+step)%len(tabs)+len(tabs))%len(tabs)]
	if err := m.Session.SetCategory(string(next)); err != nil {
		m.log.Error().Err(err).Str("category", string(next)).Msg("set category")
		return
	}
	m.Cursor = 0
	m.MapView = false
}

// regionMap returns the active region when it carries a map link.
func (m AppModel) regionMap() (*catalog.Region, bool) {
	r, ok := m.Session.Region()
	if !ok || (r.MapURL == "" && r.MapEmbedURL == "") {
		return nil, false
	}
	return r, true
}

// clampCursor keeps the listing cursor on a row after the listing shrinks.
func (m *AppModel) clampCursor() {
	n := len(m.Session.Listing())
	m.Cursor = max(0, min(m.Cursor, n-1))
}

func (m AppModel) renderPlaces() string {
	st := m.Styles
	snap := m.Session.Snapshot()
	listing := m.Session.Listing()

	var b strings.Builder
	title := snap.RegionKey
	if r, ok := m.Session.Region(); ok && r.Tourism != nil && r.Tourism.BestTimeToVisit != "" {
		title += "  " + st.Subtitle.Render("best time: "+r.Tourism.BestTimeToVisit)
	}
	b.WriteString(" " + st.Title.Render(title))
	b.WriteString("\n")

	tabs := make([]string, 0, len(catalog.FilterTabs()))
	for _, c := range catalog.FilterTabs() {
		if c == snap.Category {
			tabs = append(tabs, st.TabActive.Render(string(c)))
		} else {
			tabs = append(tabs, st.TabInactive.Render(string(c)))
		}
	}
	b.WriteString(" " + strings.Join(tabs, " "))
	b.WriteString("\n")
	b.WriteString(st.Dim.Render(fmt.Sprintf(" %s · sorted by %s", formatCount(len(listing), "place"), snap.Sort.Label())))
	b.WriteString("\n\n")

	if r, ok := m.regionMap(); ok && m.MapView {
		b.WriteString(renderMap(r, st))
		return b.String()
	}

	if len(listing) == 0 {
		b.WriteString(st.Dim.Render("  nothing in this category"))
		return b.String()
	}

	height := max(1, m.bodyHeight()-5)
	start, end := window(len(listing), m.Cursor, height)
	showDistrict := m.Session.IsGlobal()
	for i := start; i < end; i++ {
		b.WriteString(m.renderPlaceRow(listing[i], i == m.Cursor, showDistrict))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderMap(r *catalog.Region, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Subtitle.Render("  Interactive map of " + r.Name))
	b.WriteString("\n\n")
	if r.MapURL != "" {
		b.WriteString("  " + st.Dim.Render("Map    ") + r.MapURL + "\n")
	}
	if r.MapEmbedURL != "" {
		b.WriteString("  " + st.Dim.Render("Embed  ") + r.MapEmbedURL + "\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Dim.Render("  open a link in your browser · m shows the places again"))
	return b.String()
}

func (m AppModel) renderPlaceRow(p catalog.Place, selected, showDistrict bool) string {
	st := m.Styles
	fav := "  "
	if m.Session.IsFavorite(p.Name) {
		fav = st.Favorite.Render(iconFavorite) + " "
	}
	rating := st.Rating.Render(fmt.Sprintf("%s %.1f", iconStar, p.Rating))

	name := p.Name
	if showDistrict {
		name += " · " + p.District
	}
	nameWidth := max(10, m.Width-20)
	if m.Width >= CompactWidth && p.Badge != "" {
		nameWidth -= len(p.Badge) + 3
	}
	name = padRight(TruncateWithEllipsis(name, nameWidth), nameWidth)

	row := fav + name + " " + rating
	if m.Width >= CompactWidth && p.Badge != "" {
		row += " " + st.Badge.Render(p.Badge)
	}
	if selected {
		return " " + st.Indicator.Render(selectionIndicator) + " " + st.RowSelected.Render(row)
	}
	return "   " + st.RowNormal.Render(row)
}
