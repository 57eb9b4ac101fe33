package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/session"
	"github.com/papapumpkin/tnguide/internal/weather"
)

// weatherKeys lists the statewide view followed by every region.
func (m AppModel) weatherKeys() []string {
	cat := m.Session.Catalog()
	return append([]string{cat.GlobalKey()}, cat.Keys()...)
}

func (m *AppModel) handleWeatherKey(msg tea.KeyMsg) {
	keys := m.weatherKeys()
	i := max(0, slices.Index(keys, m.WeatherKey))
	switch {
	case key.Matches(msg, m.Keys.Left), key.Matches(msg, m.Keys.Up):
		m.WeatherKey = keys[(i-1+len(keys))%len(keys)]
	case key.Matches(msg, m.Keys.Right), key.Matches(msg, m.Keys.Down):
		m.WeatherKey = keys[(i+1)%len(keys)]
	case key.Matches(msg, m.Keys.Enter):
		if err := m.Session.Explore(m.WeatherKey, ""); err != nil {
			m.log.Warn().Err(err).Str("region", m.WeatherKey).Msg("explore from weather")
			return
		}
		m.Cursor = 0
		m.navigate(session.ScreenPlaces)
	case key.Matches(msg, m.Keys.Back):
		m.navigate(session.ScreenHome)
	}
}

func (m AppModel) renderWeather() string {
	st := m.Styles
	r, ok := weather.For(m.Session.Catalog(), m.WeatherKey)
	if !ok {
		return st.Dim.Render("  no weather for " + m.WeatherKey)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.Title.Render(fmt.Sprintf("  %s %s", r.Icon, r.Key)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		st.DetailTitle.Render(fmt.Sprintf("%d°C", r.Temp)),
		st.DetailValue.Render(r.Condition)))
	if r.Recommendation != "" {
		b.WriteString("  " + st.Subtitle.Render(r.Recommendation))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cells := make([]string, len(r.Forecast))
	for i, d := range r.Forecast {
		cells[i] = fmt.Sprintf("%s %s %d°", st.DetailLabel.Render(d.Name), weather.Icon(d.Condition), d.Temp)
	}
	if m.Width >= CompactWidth+20 {
		b.WriteString("  " + strings.Join(cells, "   "))
	} else {
		b.WriteString("  " + strings.Join(cells, "\n  "))
	}
	b.WriteString("\n\n")
	b.WriteString(st.Dim.Render("  ←/→ change district · enter to browse its places"))
	return b.String()
}
