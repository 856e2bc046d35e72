package commands

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var ErrTrackArrivalsCommandIsNotConstructed = errors.New(
	"TrackArrivalsCommand must be created via NewTrackArrivalsCommand constructor",
)

// TrackArrivalsCommand is one poll of the delivery registry at a point in time.
type TrackArrivalsCommand struct {
	now   time.Time
	guard guard.ConstructorGuard
}

// NewTrackArrivalsCommand creates a poll at now.
func NewTrackArrivalsCommand(now time.Time) TrackArrivalsCommand {
	return TrackArrivalsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c TrackArrivalsCommand) Validate() error {
	return c.guard.Validate(ErrTrackArrivalsCommandIsNotConstructed)
}

func (c TrackArrivalsCommand) Now() time.Time {
	return c.now
}
