// Package servers holds the HTTP contract of the simulator: the embedded
// OpenAPI document, the wire types it describes and the echo wrapper that
// binds request parameters before calling a ServerInterface.
//
// The package is maintained by hand alongside openapi.yaml; spec_test.go
// checks that every documented operation is routed.
package servers

// Event names carried by TruckArrivedEvent.
const (
	TruckArrived TruckArrivedEventEvent = "TruckArrived"
)

// Dimensions is a width/height/length triple in centimetres.
type Dimensions struct {
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PackageEvent is one frame of the package stream.
type PackageEvent struct {
	PackageId   string      `json:"package_id"`
	PackageType PackageType `json:"package_type"`
}

// PackageType describes the type of a generated package.
type PackageType struct {
	Dimensions     Dimensions `json:"dimensions"`
	Label          string     `json:"label"`
	WeightCapacity float64    `json:"weight_capacity"`
}

// Truck is a truck registration and an entry of GET /trucks.
type Truck struct {
	Id            string     `json:"id"`
	MaxWeight     float64    `json:"max_weight"`
	Packages      []string   `json:"packages"`
	TruckCapacity Dimensions `json:"truck_capacity"`
}

// TruckAdded acknowledges a registration.
type TruckAdded struct {
	Message string `json:"message"`
	TruckId string `json:"truck_id"`
}

// TruckArrivedEvent is one frame of the updates stream.
type TruckArrivedEvent struct {
	Event   TruckArrivedEventEvent `json:"event"`
	TruckId string                 `json:"truck_id"`
}

// TruckArrivedEventEvent names the event kind.
type TruckArrivedEventEvent string

// Buffer is the per-subscriber queue size requested by a stream client.
type Buffer = int

// StreamParams defines parameters shared by every stream operation.
type StreamParams struct {
	// Buffer Events held for this subscriber before new events are dropped.
	Buffer *Buffer `form:"buffer,omitempty" json:"buffer,omitempty"`
}

// CreateTruckJSONRequestBody is the JSON body of POST /trucks.
type CreateTruckJSONRequestBody = Truck
