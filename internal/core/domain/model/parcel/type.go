package parcel

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrTypeIsNotConstructed is returned when a zero-value Type is used.
var ErrTypeIsNotConstructed = errors.New("Type must be created via NewType constructor")

// Type describes one entry of the package-type catalog.
//
// Invariants:
//   - name and label are non-empty
//   - dimensions are valid
//   - weight capacity is positive
//   - selection weight is positive
type Type struct {
	// name is the stable identifier used as the metrics label, e.g. "EXTRA_LARGE"
	name string
	// label is the human-readable name sent to stream subscribers, e.g. "Extra Large"
	label string
	// dimensions of the box
	dimensions kernel.Dimensions
	// weightCapacity is the maximum load of the box
	weightCapacity float64
	// weight is the relative selection weight in the catalog
	weight int
	guard  guard.ConstructorGuard
}

// NewType validates and builds a catalog entry.
func NewType(name, label string, dimensions kernel.Dimensions, weightCapacity float64, weight int) (Type, error) {
	t := Type{
		name:           name,
		label:          label,
		dimensions:     dimensions,
		weightCapacity: weightCapacity,
		weight:         weight,
		guard:          guard.NewConstructorGuard(),
	}

	var nameErr, labelErr, capErr, weightErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if label == "" {
		labelErr = errs.NewValueIsRequiredError("label")
	}
	if weightCapacity <= 0 {
		capErr = errs.NewValueIsOutOfRangeError("weight_capacity", weightCapacity, "(0", "+Inf)")
	}
	if weight <= 0 {
		weightErr = errs.NewValueIsOutOfRangeError("weight", weight, 1, "+Inf")
	}

	if err := errors.Join(nameErr, labelErr, dimensions.Validate(), capErr, weightErr); err != nil {
		return Type{}, err
	}
	return t, nil
}

func mustType(name, label string, dimensions kernel.Dimensions, weightCapacity float64, weight int) Type {
	t, err := NewType(name, label, dimensions, weightCapacity, weight)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate reports whether the value was built by NewType.
func (t Type) Validate() error {
	return t.guard.Validate(ErrTypeIsNotConstructed)
}

func (t Type) Name() string {
	return t.name
}

func (t Type) Label() string {
	return t.label
}

func (t Type) Dimensions() kernel.Dimensions {
	return t.dimensions
}

func (t Type) WeightCapacity() float64 {
	return t.weightCapacity
}

// Weight is the relative selection weight; probability is Weight / sum of all weights.
func (t Type) Weight() int {
	return t.weight
}

func (t Type) String() string {
	return t.label
}
