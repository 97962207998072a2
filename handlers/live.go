package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/hub"
	"github.com/hferdian/votely/tally"
)

type LiveHandler struct {
	hub      *hub.Hub
	board    *tally.Board
	upgrader websocket.Upgrader
}

func NewLiveHandler(h *hub.Hub, board *tally.Board, cfg cliparse.Config) *LiveHandler {
	return &LiveHandler{
		hub:   h,
		board: board,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if cfg.AllowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == cfg.AllowedOrigin
			},
		},
	}
}

// Serve handles GET /live: upgrades to a websocket, sends the current
// snapshot immediately, then pumps hub messages until the peer goes away.
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	id, messages := h.hub.Subscribe()
	slog.Info("observer connected", "subscriber", id, "remote", r.RemoteAddr)

	// A late joiner should not have to wait for the next mutation.
	snapshot := h.board.Snapshot()
	if err := conn.WriteJSON(hub.Message{Type: hub.TypeTallyChanged, Snapshot: &snapshot}); err != nil {
		h.hub.Unsubscribe(id)
		conn.Close()
		return
	}

	// Read pump: inbound frames are discarded, it exists to notice the
	// disconnect and tear the subscription down.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unsubscribe(id)
				conn.Close()
				return
			}
		}
	}()

	for msg := range messages {
		if err := conn.WriteJSON(msg); err != nil {
			break
		}
	}

	h.hub.Unsubscribe(id)
	conn.Close()
	slog.Info("observer disconnected", "subscriber", id)
}
