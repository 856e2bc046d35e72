package services

import (
	"errors"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
)

// ErrEmptyCatalog is returned when a selector is built without package types.
var ErrEmptyCatalog = errs.NewValueIsRequiredError("catalog")

// PackageTypeSelector draws package types with probability weight / sum(weights).
// Draws are independent (with replacement).
//
// Example usage:
//
//	selector, _ := NewPackageTypeSelector(parcel.Catalog(), nil)
//	pt := selector.Select() // Small about half of the time
type PackageTypeSelector struct {
	types      []parcel.Type
	cumulative []int
	total      int
	rng        *Rand
}

// NewPackageTypeSelector validates the catalog and precomputes cumulative weights.
//
// Parameters:
//   - catalog: non-empty list of valid types with positive weights
//   - rng: random source; nil picks a randomly seeded one
//
// Returns:
//   - *PackageTypeSelector ready for concurrent use
//   - error: ErrEmptyCatalog, or the validation errors of invalid entries
func NewPackageTypeSelector(catalog []parcel.Type, rng *Rand) (*PackageTypeSelector, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &PackageTypeSelector{
		types:      make([]parcel.Type, 0, len(catalog)),
		cumulative: make([]int, 0, len(catalog)),
		rng:        orRandom(rng),
	}

	var errList []error
	for _, pt := range catalog {
		if err := pt.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		s.total += pt.Weight()
		s.types = append(s.types, pt)
		s.cumulative = append(s.cumulative, s.total)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return s, nil
}

// Select returns one package type.
func (s *PackageTypeSelector) Select() parcel.Type {
	r := s.rng.Float64() * float64(s.total)
	for i, c := range s.cumulative {
		if r < float64(c) {
			return s.types[i]
		}
	}
	// r == total can only happen through float rounding
	return s.types[len(s.types)-1]
}

// Probability returns the configured selection probability of pt, or 0 if pt
// is not in the catalog.
func (s *PackageTypeSelector) Probability(pt parcel.Type) float64 {
	for _, t := range s.types {
		if t.Name() == pt.Name() {
			return float64(t.Weight()) / float64(s.total)
		}
	}
	return 0
}

// Types returns the catalog the selector draws from.
func (s *PackageTypeSelector) Types() []parcel.Type {
	out := make([]parcel.Type, len(s.types))
	copy(out, s.types)
	return out
}
