package http

import (
	"log/slog"
	"time"

	"logistics/internal/pkg/fanout"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames.
	maxMessageSize = 512
)

// serveWebSocket upgrades the request and writes every event of sub as a
// JSON text frame. The subscription is closed on return.
func serveWebSocket[T, M any](
	ctx echo.Context,
	upgrader *websocket.Upgrader,
	sub *fanout.Subscription[T],
	encode func(T) M,
	logger *slog.Logger,
) error {
	defer sub.Close()

	logger = logger.With("subscriber", sub.ID(), "transport", "websocket")
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade has already replied to the client.
		logger.Debug("WebSocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()
	logger.Debug("Subscriber connected")

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-gone:
			sent, dropped := sub.Stats()
			logger.Debug("Subscriber disconnected", "sent", sent, "dropped", dropped)
			return nil
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		case event, ok := <-sub.Events():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "stream closed"),
					time.Now().Add(writeWait))
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(encode(event)); err != nil {
				logger.Debug("Event write failed", "error", err)
				return nil
			}
		}
	}
}
