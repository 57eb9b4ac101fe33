// Package session owns the view state of one browsing session and the
// transitions that change it. The presentation layer reads snapshots and
// calls transitions; it never edits state directly.
//
// A session is not safe for concurrent use. The TUI mutates it only from its
// update loop; the catalog watcher hands reloads to that loop instead of
// touching the session itself.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/filter"
	"github.com/papapumpkin/tnguide/internal/logging"
	"github.com/papapumpkin/tnguide/internal/search"
	"github.com/papapumpkin/tnguide/internal/telemetry"
)

// Recorder receives one telemetry event per transition. *telemetry.Emitter
// satisfies it; a nil Emitter discards events.
type Recorder interface {
	Emit(evt telemetry.Event) error
}

// Options tunes a Session. The zero value is usable.
type Options struct {
	// DefaultRegion overrides the catalog's default region when it names a
	// region of the catalog, matched case-insensitively.
	DefaultRegion string
	// NoticeTTL is how long notices stay up. Zero means DefaultNoticeTTL.
	NoticeTTL time.Duration
	// Strict makes precondition violations panic instead of returning an
	// error. Intended for development and tests.
	Strict bool
	// Recorder receives transition events. Nil disables telemetry.
	Recorder Recorder
}

// Session is the single owner of Selection State.
type Session struct {
	cat      *catalog.Catalog
	resolver search.Resolver
	state    State
	opts     Options
	log      zerolog.Logger
}

// New starts a session over cat with default state: the default region, all
// categories, recommended order and the home screen.
func New(cat *catalog.Catalog, opts Options) (*Session, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = DefaultNoticeTTL
	}
	s := &Session{
		cat:      cat,
		resolver: search.New(cat),
		opts:     opts,
		log:      logging.With("session"),
	}
	s.state = State{
		Screen:    ScreenHome,
		RegionKey: s.startRegion(),
		Category:  catalog.CategoryAll,
		Sort:      filter.SortRecommended,
		Favorites: map[string]bool{},
		Days:      DefaultDays,
		MaxBudget: DefaultMaxBudget,
	}
	s.record(telemetry.KindSessionStart, map[string]any{
		"catalog": cat.Name(),
		"region":  s.state.RegionKey,
		"places":  cat.PlaceCount(),
	})
	return s, nil
}

// startRegion picks the configured default when valid, else the catalog's.
func (s *Session) startRegion() string {
	if s.opts.DefaultRegion != "" {
		if key, ok := s.cat.Lookup(s.opts.DefaultRegion); ok {
			return key
		}
		s.log.Warn().Str("region", s.opts.DefaultRegion).Msg("configured default region not in catalog; using catalog default")
	}
	return s.cat.DefaultRegion()
}

// Catalog returns the catalog the session currently reads.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Resolver returns the query resolver over the current catalog.
func (s *Session) Resolver() search.Resolver { return s.resolver }

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State { return s.state.clone() }

// Screen returns the active screen.
func (s *Session) Screen() Screen { return s.state.Screen }

// RegionKey returns the active region key or the global key.
func (s *Session) RegionKey() string { return s.state.RegionKey }

// IsGlobal reports whether the session is browsing the global aggregate.
func (s *Session) IsGlobal() bool { return s.cat.IsGlobal(s.state.RegionKey) }

// Region returns the active region. ok is false on the global aggregate.
func (s *Session) Region() (*catalog.Region, bool) {
	r, err := s.cat.Region(s.state.RegionKey)
	if err != nil {
		return nil, false
	}
	return r, true
}

// Detail returns a copy of the open place, if any.
func (s *Session) Detail() (catalog.Place, bool) {
	if s.state.Detail == nil {
		return catalog.Place{}, false
	}
	return *s.state.Detail, true
}

// Notice returns the current notice, if any.
func (s *Session) Notice() (Notice, bool) {
	if s.state.Notice == nil {
		return Notice{}, false
	}
	return *s.state.Notice, true
}

// IsFavorite reports whether name is in the favorites set.
func (s *Session) IsFavorite(name string) bool { return s.state.Favorites[name] }

// Generation returns the current navigation generation.
func (s *Session) Generation() uint64 { return s.state.Generation }

// Listing returns the active listing: the active region's places (or every
// place on the global aggregate) filtered by category and sorted.
func (s *Session) Listing() []catalog.Place {
	places, err := s.cat.Places(s.state.RegionKey)
	if err != nil {
		// Unreachable while the region invariant holds.
		s.log.Error().Err(err).Str("region", s.state.RegionKey).Msg("active region missing from catalog")
		return []catalog.Place{}
	}
	return filter.Apply(places, s.state.Category, s.state.Sort)
}

// resolveTarget maps an explore target to a catalog key. An empty target
// keeps the current region, unless a category is given, in which case it
// means the global aggregate.
func (s *Session) resolveTarget(target, category string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		if strings.TrimSpace(category) != "" {
			return s.cat.GlobalKey(), nil
		}
		return s.state.RegionKey, nil
	}
	if strings.EqualFold(target, s.cat.GlobalKey()) {
		return s.cat.GlobalKey(), nil
	}
	if key, ok := s.cat.Lookup(target); ok {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, target)
}

// Explore switches the listing to target with an optional category. It
// resets the sort, closes any open detail, supersedes pending deferred
// opens and shows the places screen. On error the state is unchanged.
func (s *Session) Explore(target, category string) error {
	key, err := s.resolveTarget(target, category)
	if err != nil {
		return err
	}
	tag := catalog.CategoryAll
	if strings.TrimSpace(category) != "" {
		tag, err = catalog.ParseCategory(category)
		if err != nil {
			return err
		}
	}

	s.state.RegionKey = key
	s.state.Category = tag
	s.state.Sort = filter.SortRecommended
	s.state.Detail = nil
	s.state.Screen = ScreenPlaces
	s.bump()

	s.record(telemetry.KindExplore, map[string]any{"region": key, "category": string(tag)})
	return nil
}

// SelectSearch resolves query and navigates to the result. A region match
// explores the region. A place match explores its region and returns a
// DeferredOpen token for the detail. A blank query or a query matching
// nothing raises a notice and leaves the rest of the state unchanged.
func (s *Session) SelectSearch(query string) (Outcome, error) {
	if _, err := search.Normalize(query); err != nil {
		s.setNotice(NoticeWarn, "Please enter a destination to search.")
		return Outcome{}, err
	}
	return s.selectResult(strings.TrimSpace(query), s.resolver.Resolve(query))
}

// SelectResult navigates to an already resolved result, such as a picked
// suggestion, without resolving its name again. A place result must name a
// place stored in its region.
func (s *Session) SelectResult(res search.Result) (Outcome, error) {
	if res.Kind == search.KindPlace && !s.cat.Contains(res.RegionKey, res.Place) {
		return Outcome{}, fmt.Errorf("%w: %q in %q", ErrUnknownPlace, res.Place.Name, res.RegionKey)
	}
	return s.selectResult(res.Label(), res)
}

func (s *Session) selectResult(query string, res search.Result) (Outcome, error) {
	s.record(telemetry.KindSearch, map[string]any{
		"query":  query,
		"kind":   res.Kind.String(),
		"region": res.RegionKey,
		"place":  res.Place.Name,
	})

	switch res.Kind {
	case search.KindRegion:
		if err := s.Explore(res.RegionKey, ""); err != nil {
			return Outcome{}, err
		}
		s.state.SearchText = ""
		return Outcome{RegionKey: res.RegionKey}, nil

	case search.KindPlace:
		if err := s.Explore(res.RegionKey, ""); err != nil {
			return Outcome{}, err
		}
		s.state.SearchText = ""
		p := res.Place
		return Outcome{
			RegionKey: res.RegionKey,
			Place:     &p,
			Deferred:  &DeferredOpen{Generation: s.state.Generation, Place: p},
		}, nil

	default:
		s.setNotice(NoticeWarn, fmt.Sprintf("No guide found for %q. Try Chennai, Ooty, or Madurai.", query))
		return Outcome{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}
}

// FireDeferred opens the detail captured by tok unless a newer navigation
// has superseded it. It reports whether the detail was opened.
func (s *Session) FireDeferred(tok DeferredOpen) (bool, error) {
	if tok.Generation != s.state.Generation {
		s.log.Debug().
			Uint64("token", tok.Generation).
			Uint64("current", s.state.Generation).
			Str("place", tok.Place.Name).
			Msg("deferred open superseded")
		return false, nil
	}
	if err := s.OpenDetail(tok.Place); err != nil {
		return false, err
	}
	return true, nil
}

// OpenDetail shows place in the detail modal. The place must belong to the
// listing addressable by the active region key; otherwise the call is a
// precondition violation and the state is left unchanged.
func (s *Session) OpenDetail(place catalog.Place) error {
	if !s.cat.Contains(s.state.RegionKey, place) {
		err := fmt.Errorf("%w: place %q (%s) is not in listing %q",
			ErrPreconditionViolation, place.Name, place.District, s.state.RegionKey)
		if s.opts.Strict {
			panic(err)
		}
		s.log.Warn().Err(err).Msg("open detail rejected")
		return err
	}
	p := place
	s.state.Detail = &p
	s.bump()
	s.record(telemetry.KindDetailOpen, map[string]any{"place": place.Name, "district": place.District})
	return nil
}

// CloseDetail hides the detail modal. Closing when nothing is open is a
// no-op.
func (s *Session) CloseDetail() {
	if s.state.Detail == nil {
		return
	}
	name := s.state.Detail.Name
	s.state.Detail = nil
	s.bump()
	s.record(telemetry.KindDetailClose, map[string]any{"place": name})
}

// ToggleFavorite adds name to the favorites or removes it. It reports
// whether name is a favorite afterwards.
func (s *Session) ToggleFavorite(name string) (bool, error) {
	if !s.cat.HasPlace(name) {
		return false, fmt.Errorf("%w: %q", ErrUnknownPlace, name)
	}
	on := !s.state.Favorites[name]
	if on {
		s.state.Favorites[name] = true
	} else {
		delete(s.state.Favorites, name)
	}
	s.record(telemetry.KindFavorite, map[string]any{"place": name, "favorite": on})
	return on, nil
}

// SetCategory applies a category tab. Tabs are cross-region: every tag,
// including All, explores the global aggregate.
func (s *Session) SetCategory(tag string) error {
	if strings.TrimSpace(tag) == "" {
		tag = string(catalog.CategoryAll)
	}
	if err := s.Explore(s.cat.GlobalKey(), tag); err != nil {
		return err
	}
	s.record(telemetry.KindCategory, map[string]any{"category": string(s.state.Category)})
	return nil
}

// SetSort changes the listing order. Unknown keys fall back to the
// recommended order.
func (s *Session) SetSort(key filter.SortKey) {
	s.state.Sort = filter.ParseSortKey(string(key))
	s.record(telemetry.KindSort, map[string]any{"sort": string(s.state.Sort)})
}

// SetSearchText stores the in-progress search box contents.
func (s *Session) SetSearchText(text string) {
	s.state.SearchText = text
}

// Navigate switches screens. It closes any open detail and supersedes
// pending deferred opens. Entering the quiz restarts it.
func (s *Session) Navigate(screen Screen) error {
	if _, err := ParseScreen(string(screen)); err != nil {
		return err
	}
	s.state.Screen = screen
	s.state.Detail = nil
	if screen == ScreenQuiz {
		s.state.Quiz = Quiz{}
	}
	s.bump()
	s.record(telemetry.KindNavigate, map[string]any{"screen": string(screen)})
	return nil
}

// AnswerQuiz submits the option at index for the current question. The
// final answer stores the trip length and budget and explores the chosen
// region. It reports whether the quiz is complete.
func (s *Session) AnswerQuiz(index int) (bool, error) {
	q, ok := s.state.Quiz.Current()
	if !ok {
		return true, fmt.Errorf("%w: quiz already complete", ErrInvalidAnswer)
	}
	if index < 0 || index >= len(q.Options) {
		return false, fmt.Errorf("%w: option %d of %d", ErrInvalidAnswer, index, len(q.Options))
	}
	opt := q.Options[index]
	step := s.state.Quiz.Step

	switch step {
	case quizBudget:
		s.state.Quiz.Answers.Budget = opt.Value
	case quizDays:
		s.state.Quiz.Answers.Days = opt.Value
	case quizRegion:
		answers := s.state.Quiz.Answers
		answers.Region = opt.Region
		if err := s.Explore(opt.Region, ""); err != nil {
			return false, err
		}
		s.state.Quiz.Answers = answers
		s.state.Days = answers.Days
		s.state.MaxBudget = answers.Budget
		s.state.Quiz.Step++
		s.record(telemetry.KindQuizAnswer, map[string]any{"step": step, "option": opt.Label})
		s.record(telemetry.KindQuizComplete, map[string]any{
			"region": answers.Region,
			"days":   answers.Days,
			"budget": answers.Budget,
		})
		return true, nil
	}
	s.state.Quiz.Step++
	s.record(telemetry.KindQuizAnswer, map[string]any{"step": step, "option": opt.Label})
	return false, nil
}

// SetTrip stores the trip length and budget used by the cost screen.
// Non-positive values are ignored.
func (s *Session) SetTrip(days, maxBudget int) {
	if days > 0 {
		s.state.Days = days
	}
	if maxBudget > 0 {
		s.state.MaxBudget = maxBudget
	}
}

// Inform raises an informational notice, replacing any current one.
func (s *Session) Inform(text string) Notice {
	return s.setNotice(NoticeInfo, text)
}

// Alert raises an error notice, replacing any current one.
func (s *Session) Alert(text string) Notice {
	return s.setNotice(NoticeError, text)
}

// DismissNotice clears the notice with the given id. A stale id, from a
// notice already replaced or dismissed, is ignored. It reports whether a
// notice was cleared.
func (s *Session) DismissNotice(id string) bool {
	if s.state.Notice == nil || s.state.Notice.ID != id {
		return false
	}
	s.state.Notice = nil
	return true
}

func (s *Session) setNotice(level NoticeLevel, text string) Notice {
	n := Notice{ID: uuid.NewString(), Text: text, Level: level, TTL: s.opts.NoticeTTL}
	s.state.Notice = &n
	s.record(telemetry.KindNotice, map[string]any{"text": text, "level": int(level)})
	return n
}

// ReplaceCatalog swaps in a reloaded catalog. The active region survives if
// the new catalog still holds it, otherwise the session returns to the
// default region. Favorites and the open detail are dropped when their
// places no longer exist. Pending deferred opens are superseded.
func (s *Session) ReplaceCatalog(cat *catalog.Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}
	prev := s.cat
	s.cat = cat
	s.resolver = search.New(cat)

	switch {
	case prev.IsGlobal(s.state.RegionKey):
		s.state.RegionKey = cat.GlobalKey()
	default:
		if key, ok := cat.Lookup(s.state.RegionKey); ok {
			s.state.RegionKey = key
		} else {
			s.log.Info().Str("region", s.state.RegionKey).Msg("active region removed by reload")
			s.state.RegionKey = s.startRegion()
		}
	}

	var dropped []string
	for name := range s.state.Favorites {
		if !cat.HasPlace(name) {
			delete(s.state.Favorites, name)
			dropped = append(dropped, name)
		}
	}

	if d := s.state.Detail; d != nil {
		s.state.Detail = nil
		if cat.Contains(s.state.RegionKey, *d) {
			if fresh, ok := findPlace(cat, d.District, d.Name); ok {
				s.state.Detail = &fresh
			}
		}
	}
	s.bump()

	s.record(telemetry.KindCatalogReload, map[string]any{
		"region":            s.state.RegionKey,
		"places":            cat.PlaceCount(),
		"dropped_favorites": dropped,
	})
	return nil
}

// findPlace returns the catalog's copy of a place.
func findPlace(cat *catalog.Catalog, district, name string) (catalog.Place, bool) {
	r, err := cat.Region(district)
	if err != nil {
		return catalog.Place{}, false
	}
	for _, p := range r.Places {
		if p.Name == name {
			return p, true
		}
	}
	return catalog.Place{}, false
}

// bump advances the navigation generation.
func (s *Session) bump() { s.state.Generation++ }

// record forwards a transition event to the recorder. Telemetry failures
// are logged, never surfaced to the caller.
func (s *Session) record(kind string, data map[string]any) {
	if s.opts.Recorder == nil {
		return
	}
	if err := s.opts.Recorder.Emit(telemetry.Event{Kind: kind, Data: data}); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("telemetry emit failed")
	}
}
