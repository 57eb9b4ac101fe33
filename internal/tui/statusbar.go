package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/tnguide/internal/session"
)

// screenLabel returns the header label of a screen.
func screenLabel(s session.Screen) string {
	switch s {
	case session.ScreenHome:
		return "Home"
	case session.ScreenQuiz:
		return "Trip Quiz"
	case session.ScreenPlaces:
		return "Places"
	case session.ScreenCost:
		return "Cost"
	case session.ScreenWeather:
		return "Weather"
	}
	return string(s)
}

// renderHeader draws the screen tabs on the left and the active region and
// favorites count on the right.
func (m AppModel) renderHeader() string {
	st := m.Styles
	var tabs []string
	for i, s := range session.Screens() {
		label := fmt.Sprintf("%d %s", i+1, screenLabel(s))
		if s == m.Session.Screen() {
			tabs = append(tabs, st.HeaderActive.Render(label))
		} else {
			tabs = append(tabs, st.HeaderTab.Render(label))
		}
	}
	left := st.Header.Render("Tamil Nadu Guide") + st.HeaderTab.Render("  ") + strings.Join(tabs, st.HeaderTab.Render("  "))

	right := fmt.Sprintf("%s %s  %s %d", iconPin, m.Session.RegionKey(), iconFavorite, len(m.Session.Snapshot().Favorites))
	right = st.Header.Render(right)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.Width).Render(left)
	}
	return left + st.HeaderTab.Render(strings.Repeat(" ", gap)) + right
}

// renderNotice draws the current notice, or an empty line.
func (m AppModel) renderNotice() string {
	n, ok := m.Session.Notice()
	if !ok {
		return ""
	}
	style := m.Styles.NoticeInfo
	switch n.Level {
	case session.NoticeWarn:
		style = m.Styles.NoticeWarn
	case session.NoticeError:
		style = m.Styles.NoticeError
	}
	return style.Render(" " + TruncateWithEllipsis(n.Text, m.Width-2))
}
