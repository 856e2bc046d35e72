package natsrelay

import (
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/parcel"
)

// EventTruckArrived is the event name carried by arrival messages.
const EventTruckArrived = "TruckArrived"

type dimensionsMessage struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

type packageTypeMessage struct {
	Label          string            `json:"label"`
	Dimensions     dimensionsMessage `json:"dimensions"`
	WeightCapacity float64           `json:"weight_capacity"`
}

type packageMessage struct {
	PackageID   string             `json:"package_id"`
	PackageType packageTypeMessage `json:"package_type"`
}

type arrivalMessage struct {
	Event   string `json:"event"`
	TruckID string `json:"truck_id"`
}

func newPackageMessage(p parcel.Package) packageMessage {
	pt := p.Type()
	dims := pt.Dimensions()
	return packageMessage{
		PackageID: p.ID().String(),
		PackageType: packageTypeMessage{
			Label: pt.Label(),
			Dimensions: dimensionsMessage{
				Width:  dims.Width(),
				Height: dims.Height(),
				Length: dims.Length(),
			},
			WeightCapacity: pt.WeightCapacity(),
		},
	}
}

func newArrivalMessage(a delivery.Arrival) arrivalMessage {
	return arrivalMessage{Event: EventTruckArrived, TruckID: a.TruckID}
}
