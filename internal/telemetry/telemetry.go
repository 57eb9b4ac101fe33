// Package telemetry provides a JSONL event stream recording the transitions
// of a browsing session. Every explore, search, detail toggle and quiz
// answer is written as one JSON object per line so a session can be audited
// or replayed after the fact.
package telemetry

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart  = "session_start"
	KindExplore       = "explore"
	KindSearch        = "search"
	KindDetailOpen    = "detail_open"
	KindDetailClose   = "detail_close"
	KindFavorite      = "favorite"
	KindCategory      = "category"
	KindSort          = "sort"
	KindNavigate      = "navigate"
	KindQuizAnswer    = "quiz_answer"
	KindQuizComplete  = "quiz_complete"
	KindNotice        = "notice"
	KindCatalogReload = "catalog_reload"
)

// Event represents a single telemetry record. Each event carries a
// timestamp, a kind tag and the session it belongs to, along with arbitrary
// structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file      *os.File
	enc       *json.Encoder
	sessionID string
	now       func() time.Time
	mu        sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
// Every event is stamped with a fresh random session id.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:      f,
		enc:       json.NewEncoder(f),
		sessionID: uuid.NewString(),
		now:       time.Now,
	}, nil
}

// SessionID returns the id stamped on events that carry none. It is empty
// for a nil Emitter.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.sessionID
}

// Emit writes a single event to the JSONL file. A zero timestamp is set to
// the current time and an empty session id to the emitter's own. It is safe
// for concurrent use. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now().UTC()
	}
	if evt.SessionID == "" {
		evt.SessionID = e.sessionID
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
