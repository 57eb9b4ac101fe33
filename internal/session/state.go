package session

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/filter"
)

// Screen is a top-level view. The detail modal is orthogonal to the screen.
type Screen string

// Screens in navigation order.
const (
	ScreenHome    Screen = "home"
	ScreenQuiz    Screen = "quiz"
	ScreenPlaces  Screen = "places"
	ScreenCost    Screen = "cost"
	ScreenWeather Screen = "weather"
)

// Screens returns every screen in navigation order.
func Screens() []Screen {
	return []Screen{ScreenHome, ScreenQuiz, ScreenPlaces, ScreenCost, ScreenWeather}
}

// ParseScreen maps s case-insensitively to a Screen.
func ParseScreen(s string) (Screen, error) {
	for _, sc := range Screens() {
		if strings.EqualFold(strings.TrimSpace(s), string(sc)) {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
}

// Session defaults.
const (
	DefaultDays      = 3
	DefaultMaxBudget = 50000
	DefaultNoticeTTL = 3 * time.Second
)

// NoticeLevel grades a notice for display.
type NoticeLevel int

const (
	// NoticeInfo is a neutral message.
	NoticeInfo NoticeLevel = iota
	// NoticeWarn is a recoverable user error such as a search with no match.
	NoticeWarn
	// NoticeError reports a failure outside the user's control.
	NoticeError
)

// Notice is a transient user-facing message. It should be dismissed after
// TTL; dismissal by ID ignores notices that have already been replaced.
type Notice struct {
	ID    string
	Text  string
	Level NoticeLevel
	TTL   time.Duration
}

// State is the complete view state of one session. Values returned by
// Session.Snapshot are copies and may be retained freely.
type State struct {
	Screen     Screen
	RegionKey  string
	Detail     *catalog.Place
	Category   catalog.Category
	Sort       filter.SortKey
	Favorites  map[string]bool
	SearchText string
	Quiz       Quiz
	Days       int
	MaxBudget  int
	Notice     *Notice

	// Generation increases on every navigation. A deferred detail open
	// only fires while the generation it captured is still current.
	Generation uint64
}

// clone returns a deep copy of s.
func (s State) clone() State {
	out := s
	out.Favorites = maps.Clone(s.Favorites)
	if out.Favorites == nil {
		out.Favorites = map[string]bool{}
	}
	if s.Detail != nil {
		d := *s.Detail
		out.Detail = &d
	}
	if s.Notice != nil {
		n := *s.Notice
		out.Notice = &n
	}
	return out
}

// FavoriteNames returns the favorites in sorted order.
func (s State) FavoriteNames() []string {
	return slices.Sorted(maps.Keys(s.Favorites))
}

// DeferredOpen is a pending detail open scheduled after a place search. The
// presentation layer fires it after a cosmetic delay with FireDeferred.
type DeferredOpen struct {
	Generation uint64
	Place      catalog.Place
}

// Outcome reports what a search resolved to. Deferred is set only for
// place matches.
type Outcome struct {
	RegionKey string
	Place     *catalog.Place
	Deferred  *DeferredOpen
}
