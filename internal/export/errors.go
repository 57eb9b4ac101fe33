package export

import "errors"

var (
	// ErrUnknownFormat indicates an export format other than sqlite or json.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrNilCatalog indicates an export call without a catalog.
	ErrNilCatalog = errors.New("nil catalog")
)
