package realtime

import (
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/net/websocket"

	"canteen-system/internal/common/logger"
)

// NewHandler exposes the hub over a websocket endpoint. Clients announce room
// membership with join frames after connecting; everything else on the wire
// is server to client.
func NewHandler(hub *Hub, lg *logger.Logger) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		serveConn(conn, hub, lg)
	})
}

func serveConn(conn *websocket.Conn, hub *Hub, lg *logger.Logger) {
	peer := NewPeer(json.NewEncoder(conn))
	hub.Connect(peer)
	lg.Debug("endpoint_connected", map[string]any{"remote": conn.Request().RemoteAddr})
	defer func() {
		hub.Disconnect(peer)
		lg.Debug("endpoint_disconnected", map[string]any{"remote": conn.Request().RemoteAddr})
		_ = conn.Close()
	}()

	dec := json.NewDecoder(conn)
	for {
		var f inboundFrame
		if err := dec.Decode(&f); err != nil {
			if err != io.EOF {
				lg.Debug("frame_decode_failed", map[string]any{"error": err.Error()})
			}
			return
		}
		switch f.Type {
		case "join":
			if room := decodeRoom(f.Payload); room != "" {
				hub.Join(peer, room)
				lg.Debug("endpoint_joined", map[string]any{"room": room})
			}
		case "leave":
			if room := decodeRoom(f.Payload); room != "" {
				hub.Leave(peer, room)
			}
		default:
			// Unknown client frames are ignored; the channel has no
			// error-reporting path.
		}
	}
}

func decodeRoom(raw json.RawMessage) string {
	var room string
	if err := json.Unmarshal(raw, &room); err != nil {
		return ""
	}
	return room
}
