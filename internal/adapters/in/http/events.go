package http

import (
	"logistics/internal/api/servers"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/parcel"
)

func toPackageEvent(p parcel.Package) servers.PackageEvent {
	pt := p.Type()
	dims := pt.Dimensions()
	return servers.PackageEvent{
		PackageId: p.ID().String(),
		PackageType: servers.PackageType{
			Label: pt.Label(),
			Dimensions: servers.Dimensions{
				Width:  dims.Width(),
				Height: dims.Height(),
				Length: dims.Length(),
			},
			WeightCapacity: pt.WeightCapacity(),
		},
	}
}

func toTruckArrivedEvent(a delivery.Arrival) servers.TruckArrivedEvent {
	return servers.TruckArrivedEvent{
		Event:   servers.TruckArrived,
		TruckId: a.TruckID,
	}
}
