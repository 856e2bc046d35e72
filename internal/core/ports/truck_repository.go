// Package ports defines the contracts between the logistics core and its
// adapters: storage, event publishing, clocks and metrics.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/truck"
)

// TruckRepository stores registered trucks for listing.
// It is not consulted by delivery tracking.
type TruckRepository interface {
	// Save stores the truck, replacing any previous truck with the same ID.
	// A replaced truck keeps its original position in GetAll.
	Save(ctx context.Context, truck *truck.Truck) error

	// GetAll returns every stored truck in first-registration order.
	GetAll(ctx context.Context) ([]*truck.Truck, error)
}
