package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their catalog-file spelling.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks a parsed catalog file and returns every problem found.
// An empty result means the file can be turned into a Catalog.
func Validate(f File, source string) []ValidationError {
	var errs []ValidationError

	if err := validate.StructExcept(f, "Regions"); err != nil {
		errs = append(errs, fieldErrors(err, source, "", "")...)
	}
	if len(f.Regions) == 0 {
		errs = append(errs, ValidationError{
			Category:   ValCatField,
			SourceFile: source,
			Field:      "regions",
			Err:        fmt.Errorf("%w: at least one region is required", ErrInvalidField),
		})
	}

	seenRegions := make(map[string]bool, len(f.Regions))
	defaultFound := false
	for _, r := range f.Regions {
		if err := validate.StructExcept(r, "Places"); err != nil {
			errs = append(errs, fieldErrors(err, source, r.Name, "")...)
		}
		if r.Name != "" {
			if seenRegions[r.Name] {
				errs = append(errs, ValidationError{
					Category:   ValCatDuplicateRegion,
					SourceFile: source,
					Region:     r.Name,
					Err:        ErrDuplicateRegion,
				})
			}
			seenRegions[r.Name] = true
		}
		if r.Name == f.DefaultRegion {
			defaultFound = true
		}

		seenPlaces := make(map[string]bool, len(r.Places))
		for _, p := range r.Places {
			if err := validate.Struct(p); err != nil {
				errs = append(errs, fieldErrors(err, source, r.Name, p.Name)...)
			}
			if p.Name != "" {
				if seenPlaces[p.Name] {
					errs = append(errs, ValidationError{
						Category:   ValCatDuplicatePlace,
						SourceFile: source,
						Region:     r.Name,
						Place:      p.Name,
						Err:        ErrDuplicatePlace,
					})
				}
				seenPlaces[p.Name] = true
			}
			for _, c := range p.Category {
				if parsed, err := ParseCategory(c); err != nil || parsed == CategoryAll {
					errs = append(errs, ValidationError{
						Category:   ValCatCategory,
						SourceFile: source,
						Region:     r.Name,
						Place:      p.Name,
						Field:      "category",
						Err:        fmt.Errorf("%w: %q", ErrUnknownCategory, c),
					})
				}
			}
		}
	}

	if f.DefaultRegion != "" && !defaultFound {
		errs = append(errs, ValidationError{
			Category:   ValCatDefault,
			SourceFile: source,
			Region:     f.DefaultRegion,
			Field:      "default_region",
			Err:        ErrMissingDefault,
		})
	}
	return errs
}

// fieldErrors converts validator output into ValidationErrors.
func fieldErrors(err error, source, region, place string) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{
			Category:   ValCatField,
			SourceFile: source,
			Region:     region,
			Place:      place,
			Err:        fmt.Errorf("%w: %v", ErrInvalidField, err),
		}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		out = append(out, ValidationError{
			Category:   ValCatField,
			SourceFile: source,
			Region:     region,
			Place:      place,
			Field:      fe.Field(),
			Err:        fmt.Errorf("%w: violates %s", ErrInvalidField, constraint),
		})
	}
	return out
}

// joinValidation folds validation problems into a single error.
func joinValidation(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	wrapped := make([]error, 0, len(errs)+1)
	wrapped = append(wrapped, ErrInvalidCatalog)
	for i := range errs {
		wrapped = append(wrapped, &errs[i])
	}
	return errors.Join(wrapped...)
}
