// Package queries contains read operations over simulator state.
// Queries never mutate anything and return plain read models.
package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetAllTrucksQueryIsNotConstructed = errors.New(
		"GetAllTrucksQuery must be created via NewGetAllTrucksQuery constructor",
	)
)

// GetAllTrucksQuery lists every registered truck in registration order.
//
// Example:
//
//	query := NewGetAllTrucksQuery()
//	trucks, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("list trucks: %w", err)
//	}
type GetAllTrucksQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllTrucksQuery() GetAllTrucksQuery {
	return GetAllTrucksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTrucksQueryIsNotConstructed)
}

// CapacityResponse is the cargo space of a truck.
type CapacityResponse struct {
	Width  float64
	Height float64
	Length float64
}

// GetAllTrucksQueryResponse is the read model of one registered truck.
type GetAllTrucksQueryResponse struct {
	ID         string
	Capacity   CapacityResponse
	MaxWeight  float64
	PackageIDs []string
}
