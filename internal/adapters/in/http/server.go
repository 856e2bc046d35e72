package http

import (
	"log/slog"
	"net/http"

	"logistics/internal/api/servers"
	"logistics/internal/core/application/streams"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/fanout"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// MaxStreamBuffer is the largest per-subscriber buffer a client may request.
const MaxStreamBuffer = 4096

// StreamSource opens subscriptions to the package and arrival streams.
type StreamSource interface {
	SubscribePackages(buffer int) (*fanout.Subscription[parcel.Package], error)
	SubscribeArrivals(buffer int) (*fanout.Subscription[delivery.Arrival], error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers, application use cases and the
// event streams.
type Server struct {
	// Command handlers
	registerTruckHandler commands.RegisterTruckCommandHandler

	// Query handlers
	getAllTrucksHandler queries.GetAllTrucksQueryHandler

	streams       StreamSource
	defaultBuffer int
	upgrader      websocket.Upgrader
	logger        *slog.Logger
}

// NewServer creates the HTTP server. defaultBuffer is the subscriber buffer
// used when a stream request does not ask for one.
func NewServer(
	registerTruckHandler commands.RegisterTruckCommandHandler,
	getAllTrucksHandler queries.GetAllTrucksQueryHandler,
	streamSource StreamSource,
	defaultBuffer int,
	logger *slog.Logger,
) *Server {
	if defaultBuffer <= 0 || defaultBuffer > MaxStreamBuffer {
		defaultBuffer = streams.DefaultBuffer
	}
	return &Server{
		registerTruckHandler: registerTruckHandler,
		getAllTrucksHandler:  getAllTrucksHandler,
		streams:              streamSource,
		defaultBuffer:        defaultBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger.With("component", "http_server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetTrucks handles GET /trucks - lists registered trucks.
func (s *Server) GetTrucks(ctx echo.Context) error {
	trucks, err := s.getAllTrucksHandler.Handle(ctx.Request().Context(), queries.NewGetAllTrucksQuery())
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to list trucks", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve trucks",
		})
	}

	response := make([]servers.Truck, len(trucks))
	for i, t := range trucks {
		packages := t.PackageIDs
		if packages == nil {
			packages = []string{}
		}
		response[i] = servers.Truck{
			Id:        t.ID,
			MaxWeight: t.MaxWeight,
			Packages:  packages,
			TruckCapacity: servers.Dimensions{
				Width:  t.Capacity.Width,
				Height: t.Capacity.Height,
				Length: t.Capacity.Length,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTruck handles POST /trucks - registers a truck and dispatches it.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var body servers.CreateTruckJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterTruckCommand(
		body.Id,
		body.TruckCapacity.Width,
		body.TruckCapacity.Height,
		body.TruckCapacity.Length,
		body.MaxWeight,
		body.Packages,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid truck data: " + err.Error(),
		})
	}

	d, err := s.registerTruckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to register truck", "truck_id", body.Id, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register truck",
		})
	}

	s.logger.InfoContext(ctx.Request().Context(), "Truck dispatched",
		"truck_id", d.TruckID(),
		"packages", d.PackageCount(),
		"travel_time", d.TravelTime().String(),
	)

	return ctx.JSON(http.StatusOK, servers.TruckAdded{
		Message: "Truck added successfully",
		TruckId: d.TruckID(),
	})
}

// StreamPackages handles GET /packages - Server-Sent Events of generated packages.
func (s *Server) StreamPackages(ctx echo.Context, params servers.StreamParams) error {
	buffer, err := s.bufferSize(params.Buffer)
	if err != nil {
		return badRequest(ctx, err)
	}
	sub, err := s.streams.SubscribePackages(buffer)
	if err != nil {
		return s.streamUnavailable(ctx, err)
	}
	return serveSSE(ctx, sub, toPackageEvent, s.logger.With("stream", streams.StreamPackages))
}

// StreamUpdates handles GET /updates - Server-Sent Events of truck arrivals.
func (s *Server) StreamUpdates(ctx echo.Context, params servers.StreamParams) error {
	buffer, err := s.bufferSize(params.Buffer)
	if err != nil {
		return badRequest(ctx, err)
	}
	sub, err := s.streams.SubscribeArrivals(buffer)
	if err != nil {
		return s.streamUnavailable(ctx, err)
	}
	return serveSSE(ctx, sub, toTruckArrivedEvent, s.logger.With("stream", streams.StreamArrivals))
}

// StreamPackagesWebSocket handles GET /ws/packages.
func (s *Server) StreamPackagesWebSocket(ctx echo.Context, params servers.StreamParams) error {
	buffer, err := s.bufferSize(params.Buffer)
	if err != nil {
		return badRequest(ctx, err)
	}
	sub, err := s.streams.SubscribePackages(buffer)
	if err != nil {
		return s.streamUnavailable(ctx, err)
	}
	return serveWebSocket(ctx, &s.upgrader, sub, toPackageEvent, s.logger.With("stream", streams.StreamPackages))
}

// StreamUpdatesWebSocket handles GET /ws/updates.
func (s *Server) StreamUpdatesWebSocket(ctx echo.Context, params servers.StreamParams) error {
	buffer, err := s.bufferSize(params.Buffer)
	if err != nil {
		return badRequest(ctx, err)
	}
	sub, err := s.streams.SubscribeArrivals(buffer)
	if err != nil {
		return s.streamUnavailable(ctx, err)
	}
	return serveWebSocket(ctx, &s.upgrader, sub, toTruckArrivedEvent, s.logger.With("stream", streams.StreamArrivals))
}

func (s *Server) bufferSize(requested *servers.Buffer) (int, error) {
	if requested == nil {
		return s.defaultBuffer, nil
	}
	if *requested < 1 || *requested > MaxStreamBuffer {
		return 0, errs.NewValueIsOutOfRangeError("buffer", *requested, 1, MaxStreamBuffer)
	}
	return *requested, nil
}

func (s *Server) streamUnavailable(ctx echo.Context, err error) error {
	s.logger.WarnContext(ctx.Request().Context(), "Stream unavailable", "error", err)
	return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
		Code:    http.StatusServiceUnavailable,
		Message: "Stream unavailable",
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
