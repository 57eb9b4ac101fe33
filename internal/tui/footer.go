package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/papapumpkin/tnguide/internal/session"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
	Styles   Styles
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		if help.Key == "" {
			continue
		}
		part := f.Styles.FooterKey.Render(help.Key)
		if !compact {
			part += f.Styles.FooterSep.Render(":") + f.Styles.FooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := f.Styles.FooterSep.Render("  ")
	if compact {
		sep = f.Styles.FooterSep.Render(" ")
	}
	return f.Styles.Footer.Width(f.Width).Render(strings.Join(parts, sep))
}

// DetailFooterBindings returns footer bindings while the detail modal is open.
func DetailFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Favorite, km.Back, km.Quit}
}

// SearchFooterBindings returns footer bindings while typing a search.
func SearchFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.Back}
}

// ScreenFooterBindings returns footer bindings for a screen.
func ScreenFooterBindings(km KeyMap, screen session.Screen) []key.Binding {
	switch screen {
	case session.ScreenHome:
		return []key.Binding{km.Search, km.NextTab, km.Theme, km.Quit}
	case session.ScreenQuiz:
		return []key.Binding{km.Up, km.Down, km.Enter, km.Back, km.Quit}
	case session.ScreenPlaces:
		return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Enter, km.Sort, km.Favorite, km.Map, km.Back, km.Quit}
	case session.ScreenCost:
		return []key.Binding{km.Left, km.Right, km.MoreDays, km.MorePeople, km.Back, km.Quit}
	case session.ScreenWeather:
		return []key.Binding{km.Left, km.Right, km.Back, km.Quit}
	}
	return []key.Binding{km.Quit}
}
