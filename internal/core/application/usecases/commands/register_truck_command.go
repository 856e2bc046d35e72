package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/guard"
)

var ErrRegisterTruckCommandIsNotConstructed = errors.New(
	"RegisterTruckCommand must be created via NewRegisterTruckCommand constructor",
)

// RegisterTruckCommand dispatches a truck with its manifest.
//
// Example:
//
//	cmd, err := NewRegisterTruckCommand("T-42", 250, 250, 600, 3500, []string{"pkg-1"})
//	if err != nil {
//	    return err // validation error, reported to the client as 400
//	}
//	d, err := handler.Handle(ctx, cmd)
type RegisterTruckCommand struct {
	truck *truck.Truck
	guard guard.ConstructorGuard
}

// NewRegisterTruckCommand validates the payload by building the Truck aggregate.
func NewRegisterTruckCommand(
	truckID string,
	width, height, length float64,
	maxWeight float64,
	packageIDs []string,
) (RegisterTruckCommand, error) {
	capacity, dimErr := kernel.NewDimensions(width, height, length)
	t, truckErr := truck.NewTruck(truckID, capacity, maxWeight, packageIDs)
	if err := errors.Join(dimErr, truckErr); err != nil {
		return RegisterTruckCommand{}, err
	}

	return RegisterTruckCommand{
		truck: t,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTruckCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTruckCommandIsNotConstructed)
}

func (c RegisterTruckCommand) Truck() *truck.Truck {
	return c.truck
}
