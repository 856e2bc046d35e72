package kernel

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDimensionsIsNotConstructed is returned when a zero-value Dimensions is used.
var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is an immutable width/height/length triple measured in centimetres.
// It describes both package sizes in the catalog and truck cargo capacity.
//
// Every side must be a finite, strictly positive number. The zero value is
// invalid; use NewDimensions.
//
// Example:
//
//	dims, err := kernel.NewDimensions(45, 45, 60)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(dims) // Dimensions(45x45x60)
type Dimensions struct { //nolint:recvcheck //using for validation
	width  float64
	height float64
	length float64
	guard  guard.ConstructorGuard
}

// NewDimensions creates Dimensions after validating every side.
// Errors for all invalid sides are joined so callers see every problem at once.
func NewDimensions(width, height, length float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setSide(&d.width, "width", width),
		setSide(&d.height, "height", height),
		setSide(&d.length, "length", length),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// MustDimensions is NewDimensions for compiled-in tables; it panics on invalid input.
func MustDimensions(width, height, length float64) Dimensions {
	d, err := NewDimensions(width, height, length)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate reports whether the value was built by NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Width() float64 {
	return d.width
}

func (d Dimensions) Height() float64 {
	return d.height
}

func (d Dimensions) Length() float64 {
	return d.length
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%gx%gx%g)", d.width, d.height, d.length)
}

func setSide(dst *float64, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidError(name)
	}
	if v <= 0 {
		return errs.NewValueIsOutOfRangeError(name, v, "(0", "+Inf)")
	}

	*dst = v
	return nil
}
