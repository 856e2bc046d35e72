package delivery

import "time"

// Arrival is the one-shot "TruckArrived" event for a delivery.
type Arrival struct {
	TruckID      string
	DepartedAt   time.Time
	DetectedAt   time.Time
	PackageCount int
}

// DeliveryTime is the elapsed time between departure and detection.
func (a Arrival) DeliveryTime() time.Duration {
	if d := a.DetectedAt.Sub(a.DepartedAt); d > 0 {
		return d
	}
	return 0
}
