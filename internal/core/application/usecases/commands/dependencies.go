// Package commands contains the operations that change simulator state.
// Each command is validated at construction; its handler performs the
// side effects against injected ports.
package commands

import "time"

// TravelTimeSampler draws the travel time of a newly dispatched truck.
type TravelTimeSampler interface {
	Sample() time.Duration
}
