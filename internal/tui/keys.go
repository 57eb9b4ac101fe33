package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Enter       key.Binding
	Back        key.Binding
	Search      key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Home        key.Binding
	Quiz        key.Binding
	Places      key.Binding
	Cost        key.Binding
	Weather     key.Binding
	Sort        key.Binding
	Favorite    key.Binding
	Map         key.Binding
	MoreDays    key.Binding
	FewerDays   key.Binding
	MorePeople  key.Binding
	FewerPeople key.Binding
	Theme       key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next screen"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev screen"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Quiz: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "quiz"),
		),
		Places: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "places"),
		),
		Cost: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "cost"),
		),
		Weather: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "weather"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Map: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "map"),
		),
		MoreDays: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "days"),
		),
		FewerDays: key.NewBinding(
			key.WithKeys("-"),
		),
		MorePeople: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[/]", "travelers"),
		),
		FewerPeople: key.NewBinding(
			key.WithKeys("["),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
