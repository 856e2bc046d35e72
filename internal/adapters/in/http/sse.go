package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/pkg/fanout"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval keeps idle SSE connections open through proxies.
const heartbeatInterval = 15 * time.Second

// serveSSE writes every event of sub as a "data:" frame until the client
// goes away or the stream is closed. The subscription is closed on return.
func serveSSE[T, M any](ctx echo.Context, sub *fanout.Subscription[T], encode func(T) M, logger *slog.Logger) error {
	defer sub.Close()

	logger = logger.With("subscriber", sub.ID(), "transport", "sse")
	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return nil
	}
	w.Flush()
	logger.Debug("Subscriber connected")

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			sent, dropped := sub.Stats()
			logger.Debug("Subscriber disconnected", "sent", sent, "dropped", dropped)
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				logger.Debug("Heartbeat write failed", "error", err)
				return nil
			}
			w.Flush()
		case event, ok := <-sub.Events():
			if !ok {
				logger.Debug("Stream closed")
				return nil
			}
			data, err := json.Marshal(encode(event))
			if err != nil {
				logger.Error("Failed to encode event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				logger.Debug("Event write failed", "error", err)
				return nil
			}
			w.Flush()
		}
	}
}
