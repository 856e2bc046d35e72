package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness probe
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// Server-Sent Events stream of generated packages
	// (GET /packages)
	StreamPackages(ctx echo.Context, params StreamParams) error
	// List registered trucks in registration order
	// (GET /trucks)
	GetTrucks(ctx echo.Context) error
	// Register a truck and dispatch it
	// (POST /trucks)
	CreateTruck(ctx echo.Context) error
	// Server-Sent Events stream of truck arrivals
	// (GET /updates)
	StreamUpdates(ctx echo.Context, params StreamParams) error
	// WebSocket stream of generated packages
	// (GET /ws/packages)
	StreamPackagesWebSocket(ctx echo.Context, params StreamParams) error
	// WebSocket stream of truck arrivals
	// (GET /ws/updates)
	StreamUpdatesWebSocket(ctx echo.Context, params StreamParams) error
}

// ServerInterfaceWrapper binds query parameters from the echo context and
// calls the matching ServerInterface method.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) StreamPackages(ctx echo.Context) error {
	params, err := bindStreamParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StreamPackages(ctx, params)
}

func (w *ServerInterfaceWrapper) GetTrucks(ctx echo.Context) error {
	return w.Handler.GetTrucks(ctx)
}

func (w *ServerInterfaceWrapper) CreateTruck(ctx echo.Context) error {
	return w.Handler.CreateTruck(ctx)
}

func (w *ServerInterfaceWrapper) StreamUpdates(ctx echo.Context) error {
	params, err := bindStreamParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StreamUpdates(ctx, params)
}

func (w *ServerInterfaceWrapper) StreamPackagesWebSocket(ctx echo.Context) error {
	params, err := bindStreamParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StreamPackagesWebSocket(ctx, params)
}

func (w *ServerInterfaceWrapper) StreamUpdatesWebSocket(ctx echo.Context) error {
	params, err := bindStreamParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StreamUpdatesWebSocket(ctx, params)
}

func bindStreamParams(ctx echo.Context) (StreamParams, error) {
	var params StreamParams
	// ------------- Optional query parameter "buffer" -------------
	err := runtime.BindQueryParameter("form", true, false, "buffer", ctx.QueryParams(), &params.Buffer)
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter buffer: %s", err))
	}
	return params, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/packages", wrapper.StreamPackages)
	router.GET(baseURL+"/trucks", wrapper.GetTrucks)
	router.POST(baseURL+"/trucks", wrapper.CreateTruck)
	router.GET(baseURL+"/updates", wrapper.StreamUpdates)
	router.GET(baseURL+"/ws/packages", wrapper.StreamPackagesWebSocket)
	router.GET(baseURL+"/ws/updates", wrapper.StreamUpdatesWebSocket)
}
