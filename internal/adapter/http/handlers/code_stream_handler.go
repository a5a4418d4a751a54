package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
	"github.com/Pivvot-Consulting/billing-form/pkg"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPingPeriod = 30 * time.Second
)

// CodeStreamHandler upgrades dashboard sessions to a websocket and
// streams code snapshots as the operator's code changes, one CodeWatcher
// per connection.

type CodeStreamHandler struct {
	codes    usecase.IOperatorCodeUseCase
	bus      interfaces.ICodeEventBus
	upgrader websocket.Upgrader
}

func NewCodeStreamHandler(codes usecase.IOperatorCodeUseCase, bus interfaces.ICodeEventBus) *CodeStreamHandler {
	return &CodeStreamHandler{
		codes: codes,
		bus:   bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from another origin; the bearer
			// token is the access control, not the Origin header.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Stream is the websocket endpoint behind GET /v1/operator/codes/stream.
func (h *CodeStreamHandler) Stream(c *gin.Context) {
	operatorID := OperatorID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote its own error response.
		log.Printf("[code][stream] upgrade failed operator_id=%s err=%v", operatorID, err)
		return
	}
	defer conn.Close()

	watcher := usecase.NewCodeWatcher(operatorID, h.codes, h.bus)
	if err := watcher.Start(c.Request.Context()); err != nil {
		log.Printf("[code][stream] watcher start failed operator_id=%s err=%v", operatorID, err)
		appErr := pkg.NewDomainError("STREAM_ERROR", "Could not start the code stream", err, http.StatusInternalServerError)
		_ = conn.WriteJSON(appErr.ToHTTPError())
		return
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Printf("[code][stream] watcher close failed operator_id=%s err=%v", operatorID, err)
		}
	}()

	// Reader goroutine: the dashboard never sends data, but reading is
	// what surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeSnapshot(conn, watcher.Snapshot()); err != nil {
		return
	}

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case snapshot, ok := <-watcher.Updates():
			if !ok {
				return
			}
			if err := writeSnapshot(conn, snapshot); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snapshot usecase.CodeSnapshot) error {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteJSON(snapshot)
}
