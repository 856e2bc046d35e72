// Package truckrepo is the in-memory TruckRepository backing GET /trucks.
package truckrepo

import (
	"context"
	"sync"

	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/ports"
)

// Repository keeps the latest truck per ID in first-registration order.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*truck.Truck
	order []string
}

var _ ports.TruckRepository = (*Repository)(nil)

// New creates an empty repository.
func New() *Repository {
	return &Repository{
		byID: make(map[string]*truck.Truck),
	}
}

// Save stores the truck, replacing an earlier truck with the same ID.
func (r *Repository) Save(ctx context.Context, aggregate *truck.Truck) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; !exists {
		r.order = append(r.order, aggregate.ID())
	}
	r.byID[aggregate.ID()] = aggregate
	return nil
}

// GetAll returns every stored truck.
func (r *Repository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	trucks := make([]*truck.Truck, 0, len(r.order))
	for _, id := range r.order {
		trucks = append(trucks, r.byID[id])
	}
	return trucks, nil
}
