package truck

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrTruckIsNotConstructed is returned when using a Truck that bypassed NewTruck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

// Truck is a dispatched vehicle with its cargo manifest.
//
// Business rules:
//   - ID is non-empty
//   - capacity is a valid Dimensions value
//   - max weight is a finite positive number
//   - every package ID on the manifest is non-empty
//   - an empty manifest is allowed (a truck may run empty)
//
// Example:
//
//	capacity, _ := kernel.NewDimensions(250, 250, 600)
//	t, err := truck.NewTruck("T-42", capacity, 3500, []string{"pkg-1", "pkg-2"})
//	if err != nil {
//	    // Handle validation error
//	}
type Truck struct {
	// id identifies the truck; registering the same id twice is allowed
	id string
	// capacity is the cargo space
	capacity kernel.Dimensions
	// maxWeight is the load limit
	maxWeight float64
	// packageIDs are the opaque package tokens loaded on the truck
	packageIDs []string
	guard      guard.ConstructorGuard
}

// NewTruck validates its arguments and returns a Truck.
// All validation errors are joined together.
func NewTruck(id string, capacity kernel.Dimensions, maxWeight float64, packageIDs []string) (*Truck, error) {
	t := &Truck{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCapacity(capacity),
		t.setMaxWeight(maxWeight),
		t.setPackageIDs(packageIDs),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the truck was built by NewTruck.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) ID() string {
	return t.id
}

func (t *Truck) Capacity() kernel.Dimensions {
	return t.capacity
}

func (t *Truck) MaxWeight() float64 {
	return t.maxWeight
}

// PackageIDs returns a copy of the manifest.
func (t *Truck) PackageIDs() []string {
	return slices.Clone(t.packageIDs)
}

// PackageCount is the manifest length.
func (t *Truck) PackageCount() int {
	return len(t.packageIDs)
}

func (t *Truck) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	t.id = id
	return nil
}

func (t *Truck) setCapacity(capacity kernel.Dimensions) error {
	if err := capacity.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("truck_capacity", err)
	}
	t.capacity = capacity
	return nil
}

func (t *Truck) setMaxWeight(maxWeight float64) error {
	if math.IsNaN(maxWeight) || math.IsInf(maxWeight, 0) {
		return errs.NewValueIsInvalidError("max_weight")
	}
	if maxWeight <= 0 {
		return errs.NewValueIsOutOfRangeError("max_weight", maxWeight, "(0", "+Inf)")
	}
	t.maxWeight = maxWeight
	return nil
}

func (t *Truck) setPackageIDs(packageIDs []string) error {
	for i, id := range packageIDs {
		if id == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("packages[%d]", i))
		}
	}
	t.packageIDs = slices.Clone(packageIDs)
	return nil
}
