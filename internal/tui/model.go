package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/papapumpkin/tnguide/internal/logging"
	"github.com/papapumpkin/tnguide/internal/search"
	"github.com/papapumpkin/tnguide/internal/session"
)

// Defaults applied by NewAppModel. A zero DetailDelay opens the detail
// immediately; only a negative one falls back to the default.
const (
	DefaultSuggestionLimit = 8
	DefaultDetailDelay     = 350 * time.Millisecond
)

// Options configures the TUI.
type Options struct {
	// SuggestionLimit caps the suggestion list under the search box.
	SuggestionLimit int
	// DetailDelay is the pause between a place search landing on its region
	// and the detail modal opening.
	DetailDelay time.Duration
	// Light selects the light theme.
	Light bool
}

// AppModel is the root BubbleTea model. It owns the session and is the only
// code that calls its transitions.
type AppModel struct {
	Session *session.Session
	Keys    KeyMap
	Styles  Styles
	Width   int
	Height  int

	Search        textinput.Model
	Suggestions   []search.Result
	SuggestCursor int // -1 while no suggestion is highlighted

	Cursor     int // row in the places listing
	MapView    bool
	QuizCursor int
	Detail     DetailPanel
	Cost       CostView
	WeatherKey string

	suggestLimit int
	detailDelay  time.Duration
	log          zerolog.Logger
}

// NewAppModel creates the root model over s.
func NewAppModel(s *session.Session, opts Options) AppModel {
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = DefaultSuggestionLimit
	}
	if opts.DetailDelay < 0 {
		opts.DetailDelay = DefaultDetailDelay
	}
	in := textinput.New()
	in.Placeholder = "Search a district or place (e.g. Ooty, Marina)"
	in.Prompt = iconPin + " "
	in.CharLimit = 64

	return AppModel{
		Session:       s,
		Keys:          DefaultKeyMap(),
		Styles:        NewStyles(opts.Light),
		Search:        in,
		SuggestCursor: -1,
		Detail:        NewDetailPanel(80, 20),
		Cost:          NewCostView(),
		WeatherKey:    s.RegionKey(),
		suggestLimit:  opts.SuggestionLimit,
		detailDelay:   opts.DetailDelay,
		log:           logging.With("tui"),
	}
}

// Init starts the cursor blink.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Detail.SetSize(m.detailWidth(), m.bodyHeight()-2)
		m.Search.Width = max(10, min(60, msg.Width-8))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgDeferredOpen:
		prev := m.noticeID()
		opened, err := m.Session.FireDeferred(msg.Token)
		if err != nil {
			m.log.Warn().Err(err).Str("place", msg.Token.Place.Name).Msg("deferred open failed")
			m.Session.Alert("Could not open " + msg.Token.Place.Name)
		}
		if opened {
			m.syncDetail()
		}
		return m, m.noticeCmd(prev)

	case MsgDismissNotice:
		m.Session.DismissNotice(msg.ID)

	case MsgCatalogReload:
		prev := m.noticeID()
		m.applyReload(msg)
		return m, m.noticeCmd(prev)

	default:
		if m.Search.Focused() {
			var cmd tea.Cmd
			m.Search, cmd = m.Search.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// handleKey routes a key to the modal, the search box or the active screen,
// then schedules dismissal for any notice the key raised.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}
	prev := m.noticeID()

	var cmd tea.Cmd
	switch {
	case m.detailOpen():
		cmd = m.handleDetailKey(msg)
	case m.Search.Focused():
		cmd = m.handleSearchKey(msg)
	default:
		var handled bool
		if handled, cmd = m.handleGlobalKey(msg); !handled {
			cmd = m.handleScreenKey(msg)
		}
	}
	return m, tea.Batch(cmd, m.noticeCmd(prev))
}

// handleGlobalKey processes keys that work on every screen. It reports
// whether the key was consumed.
func (m *AppModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Theme):
		m.Styles = NewStyles(!m.Styles.Light)
	case key.Matches(msg, m.Keys.Search):
		m.navigate(session.ScreenHome)
		return true, m.Search.Focus()
	case key.Matches(msg, m.Keys.NextTab):
		m.navigate(adjacentScreen(m.Session.Screen(), 1))
	case key.Matches(msg, m.Keys.PrevTab):
		m.navigate(adjacentScreen(m.Session.Screen(), -1))
	case key.Matches(msg, m.Keys.Home):
		m.navigate(session.ScreenHome)
	case key.Matches(msg, m.Keys.Quiz):
		m.navigate(session.ScreenQuiz)
	case key.Matches(msg, m.Keys.Places):
		m.navigate(session.ScreenPlaces)
	case key.Matches(msg, m.Keys.Cost):
		m.navigate(session.ScreenCost)
	case key.Matches(msg, m.Keys.Weather):
		m.navigate(session.ScreenWeather)
	default:
		return false, nil
	}
	return true, nil
}

func (m *AppModel) handleScreenKey(msg tea.KeyMsg) tea.Cmd {
	switch m.Session.Screen() {
	case session.ScreenHome:
		return m.handleHomeKey(msg)
	case session.ScreenQuiz:
		m.handleQuizKey(msg)
	case session.ScreenPlaces:
		m.handlePlacesKey(msg)
	case session.ScreenCost:
		m.handleCostKey(msg)
	case session.ScreenWeather:
		m.handleWeatherKey(msg)
	}
	return nil
}

// navigate switches screens and resets per-screen cursors.
func (m *AppModel) navigate(screen session.Screen) {
	if err := m.Session.Navigate(screen); err != nil {
		m.log.Error().Err(err).Str("screen", string(screen)).Msg("navigate failed")
		return
	}
	m.Search.Blur()
	m.MapView = false
	switch screen {
	case session.ScreenQuiz:
		m.QuizCursor = 0
	case session.ScreenPlaces:
		m.clampCursor()
	case session.ScreenWeather:
		m.WeatherKey = m.Session.RegionKey()
	}
}

// adjacentScreen returns the screen step positions away, wrapping around.
func adjacentScreen(cur session.Screen, step int) session.Screen {
	screens := session.Screens()
	i := 0
	for j, s := range screens {
		if s == cur {
			i = j
		}
	}
	n := len(screens)
	return screens[((i+step)%n+n)%n]
}

func (m AppModel) detailOpen() bool {
	_, ok := m.Session.Detail()
	return ok
}

// syncDetail loads the open place, if any, into the detail panel.
func (m *AppModel) syncDetail() {
	if d, ok := m.Session.Detail(); ok {
		m.Detail.SetPlace(d, m.Session.IsFavorite(d.Name), m.Styles)
	}
}

func (m *AppModel) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Session.CloseDetail()
	case key.Matches(msg, m.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.Keys.Favorite):
		if d, ok := m.Session.Detail(); ok {
			m.toggleFavorite(d.Name)
			m.syncDetail()
		}
	default:
		m.Detail.Update(msg)
	}
	return nil
}

func (m *AppModel) toggleFavorite(name string) {
	on, err := m.Session.ToggleFavorite(name)
	if err != nil {
		m.log.Warn().Err(err).Msg("toggle favorite")
		return
	}
	if on {
		m.Session.Inform("Added " + name + " to favorites")
	} else {
		m.Session.Inform("Removed " + name + " from favorites")
	}
}

// applyReload swaps in a reloaded catalog, or reports why it was rejected.
func (m *AppModel) applyReload(msg MsgCatalogReload) {
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Msg("catalog reload rejected")
		m.Session.Alert("Catalog reload failed; keeping the current data")
		return
	}
	if err := m.Session.ReplaceCatalog(msg.Catalog); err != nil {
		m.log.Error().Err(err).Msg("replace catalog")
		return
	}
	m.Session.Inform(fmt.Sprintf("Catalog reloaded: %d places", msg.Catalog.PlaceCount()))
	m.clampCursor()
	m.syncDetail()
	m.refreshSuggestions()
	if _, ok := m.Session.Catalog().Lookup(m.WeatherKey); !ok && !m.Session.Catalog().IsGlobal(m.WeatherKey) {
		m.WeatherKey = m.Session.RegionKey()
	}
}

func (m AppModel) noticeID() string {
	n, _ := m.Session.Notice()
	return n.ID
}

// noticeCmd schedules dismissal of a notice raised since prev was current.
func (m AppModel) noticeCmd(prev string) tea.Cmd {
	n, ok := m.Session.Notice()
	if !ok || n.ID == prev {
		return nil
	}
	return dismissCmd(n)
}

// bodyHeight is the height left for the active screen.
func (m AppModel) bodyHeight() int {
	return max(1, m.Height-3) // header, notice line, footer
}

func (m AppModel) detailWidth() int {
	return max(MinWidth, min(m.Width-4, 100))
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return m.Styles.Dim.Render(fmt.Sprintf("terminal too small (need %dx%d)", MinWidth, MinHeight))
	}

	var body string
	if m.detailOpen() {
		body = m.Detail.View(m.Styles)
	} else {
		body = m.renderScreen()
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderNotice(),
		body,
		m.buildFooter().View(),
	)
}

func (m AppModel) renderScreen() string {
	switch m.Session.Screen() {
	case session.ScreenQuiz:
		return m.renderQuiz()
	case session.ScreenPlaces:
		return m.renderPlaces()
	case session.ScreenCost:
		return m.renderCost()
	case session.ScreenWeather:
		return m.renderWeather()
	default:
		return m.renderHome()
	}
}

// buildFooter creates the footer with bindings for the current context.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width, Styles: m.Styles}
	switch {
	case m.detailOpen():
		f.Bindings = DetailFooterBindings(m.Keys)
	case m.Search.Focused():
		f.Bindings = SearchFooterBindings(m.Keys)
	default:
		f.Bindings = ScreenFooterBindings(m.Keys, m.Session.Screen())
	}
	return f
}
