package session

import "errors"

// Sentinel errors returned by session transitions. Unknown categories wrap
// catalog.ErrUnknownCategory and blank searches return search.ErrEmptyQuery.
var (
	// ErrUnknownRegion indicates an explore target that is neither a region
	// nor the global key.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrNoMatch indicates a search that resolved to nothing.
	ErrNoMatch = errors.New("no match")
	// ErrUnknownPlace indicates a favorite toggle for a name not in the catalog.
	ErrUnknownPlace = errors.New("unknown place")
	// ErrUnknownScreen indicates navigation to a screen that does not exist.
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrInvalidAnswer indicates a quiz option index out of range, or an
	// answer submitted after the quiz finished.
	ErrInvalidAnswer = errors.New("invalid quiz answer")
	// ErrPreconditionViolation indicates a caller bug, such as opening a
	// place that is not part of the active listing.
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrNilCatalog indicates a session built or reloaded without data.
	ErrNilCatalog = errors.New("nil catalog")
)
