package catalog

import "errors"

// Sentinel errors for catalog lookup and validation.
var (
	// ErrRegionNotFound indicates a lookup for a region key the catalog does not hold.
	ErrRegionNotFound = errors.New("region not found")
	// ErrUnknownCategory indicates a tag outside the category vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateRegion indicates two regions share a name.
	ErrDuplicateRegion = errors.New("duplicate region name")
	// ErrDuplicatePlace indicates two places in one region share a name.
	ErrDuplicatePlace = errors.New("duplicate place name")
	// ErrMissingDefault indicates the default region is not among the regions.
	ErrMissingDefault = errors.New("default region not in catalog")
	// ErrInvalidField indicates a field failed a constraint (empty, negative, out of range).
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidCatalog wraps the list of problems returned by Validate.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatField indicates a struct constraint failed.
	ValCatField ValidationCategory = "field"
	// ValCatDuplicateRegion indicates two regions share a name.
	ValCatDuplicateRegion ValidationCategory = "duplicate_region"
	// ValCatDuplicatePlace indicates two places in one region share a name.
	ValCatDuplicatePlace ValidationCategory = "duplicate_place"
	// ValCatCategory indicates a place carries an unknown category tag.
	ValCatCategory ValidationCategory = "category"
	// ValCatDefault indicates the default region is missing.
	ValCatDefault ValidationCategory = "default_region"
)

// ValidationError records a catalog problem with source context.
type ValidationError struct {
	Category   ValidationCategory
	SourceFile string
	Region     string
	Place      string
	Field      string
	Err        error
}

// Error returns a human-readable string including source and record context.
func (e *ValidationError) Error() string {
	msg := e.SourceFile + ": "
	if e.Region != "" {
		msg += "region " + e.Region + ": "
	}
	if e.Place != "" {
		msg += "place " + e.Place + ": "
	}
	if e.Field != "" {
		msg += e.Field + ": "
	}
	return msg + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
