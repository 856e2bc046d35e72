package queries

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"
)

// GetAllTrucksQueryHandler reads the truck repository and maps aggregates to
// read models.
type GetAllTrucksQueryHandler struct {
	trucks ports.TruckRepository
}

func NewGetAllTrucksQueryHandler(trucks ports.TruckRepository) GetAllTrucksQueryHandler {
	return GetAllTrucksQueryHandler{trucks: trucks}
}

// Handle returns an empty, non-nil slice when nothing is registered.
func (h GetAllTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetAllTrucksQuery,
) ([]GetAllTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.trucks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trucks: %w", err)
	}

	trucks := make([]GetAllTrucksQueryResponse, 0, len(aggregates))
	for _, t := range aggregates {
		capacity := t.Capacity()
		trucks = append(trucks, GetAllTrucksQueryResponse{
			ID: t.ID(),
			Capacity: CapacityResponse{
				Width:  capacity.Width(),
				Height: capacity.Height(),
				Length: capacity.Length(),
			},
			MaxWeight:  t.MaxWeight(),
			PackageIDs: t.PackageIDs(),
		})
	}

	return trucks, nil
}
