package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/search"
	"github.com/papapumpkin/tnguide/internal/session"
)

// handleHomeKey processes keys on the home screen while the search box is
// not focused.
func (m *AppModel) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.Enter) {
		return m.Search.Focus()
	}
	return nil
}

// handleSearchKey processes keys while the search box has focus. Only the
// arrow keys move the suggestion cursor; letters always go to the input.
func (m *AppModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.Search.Blur()
		m.SuggestCursor = -1
		return nil
	case tea.KeyUp:
		if len(m.Suggestions) > 0 {
			m.SuggestCursor = max(-1, m.SuggestCursor-1)
		}
		return nil
	case tea.KeyDown:
		if len(m.Suggestions) > 0 {
			m.SuggestCursor = min(len(m.Suggestions)-1, m.SuggestCursor+1)
		}
		return nil
	case tea.KeyEnter:
		return m.submitSearch()
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	m.Session.SetSearchText(m.Search.Value())
	m.refreshSuggestions()
	return cmd
}

// refreshSuggestions recomputes the list for the current input.
func (m *AppModel) refreshSuggestions() {
	m.Suggestions = m.Session.Resolver().Suggest(m.Search.Value(), m.suggestLimit)
	if m.SuggestCursor >= len(m.Suggestions) {
		m.SuggestCursor = len(m.Suggestions) - 1
	}
}

// submitSearch runs the highlighted suggestion, or the typed text.
func (m *AppModel) submitSearch() tea.Cmd {
	var (
		out session.Outcome
		err error
	)
	if m.SuggestCursor >= 0 && m.SuggestCursor < len(m.Suggestions) {
		out, err = m.Session.SelectResult(m.Suggestions[m.SuggestCursor])
	} else {
		out, err = m.Session.SelectSearch(m.Search.Value())
	}
	if err != nil {
		// The session has raised a notice; keep the text for editing.
		return nil
	}
	m.Search.SetValue("")
	m.Search.Blur()
	m.Suggestions = nil
	m.SuggestCursor = -1
	m.Cursor = 0
	m.MapView = false
	if out.Place != nil {
		for i, p := range m.Session.Listing() {
			if p.Name == out.Place.Name && p.District == out.Place.District {
				m.Cursor = i
				break
			}
		}
	}
	if out.Deferred != nil {
		return deferredOpenCmd(*out.Deferred, m.detailDelay)
	}
	return nil
}

func (m AppModel) renderHome() string {
	st := m.Styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(st.Title.Render("  Discover Tamil Nadu"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("  Temples, hill stations, beaches and heritage across the state."))
	b.WriteString("\n\n")

	box := st.Input
	if m.Search.Focused() {
		box = st.InputFocus
	}
	b.WriteString(indent(box.Render(m.Search.View()), 2))
	b.WriteString("\n")

	if m.Search.Focused() && strings.TrimSpace(m.Search.Value()) != "" {
		if len(m.Suggestions) == 0 {
			b.WriteString(st.Dim.Render("    no matches"))
			b.WriteString("\n")
		}
		for i, s := range m.Suggestions {
			line := s.Label()
			if s.Kind == search.KindRegion {
				line = iconPin + " " + line
			} else {
				line = "  " + line
			}
			if i == m.SuggestCursor {
				b.WriteString("  " + st.Indicator.Render(selectionIndicator) + " " + st.RowSelected.Render(line))
			} else {
				b.WriteString("    " + st.RowNormal.Render(line))
			}
			b.WriteString("\n")
		}
	} else if !m.Search.Focused() {
		b.WriteString(st.Dim.Render("  press / or enter to search, 2 for the trip quiz, 3 to browse places"))
		b.WriteString("\n")
	}

	cat := m.Session.Catalog()
	b.WriteString("\n")
	b.WriteString(st.Dim.Render("  " + formatCount(cat.Len(), "district") + " · " + formatCount(cat.PlaceCount(), "place")))
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
