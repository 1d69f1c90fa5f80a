package realtime

import (
	"encoding/json"
	"sync"
)

// Frame is the envelope for every message on the websocket channel, in both
// directions.
type Frame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// inboundFrame defers payload decoding until the type is known.
type inboundFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Peer is one connected endpoint. The mutex serializes frame writes so
// concurrent publishes cannot interleave on the wire.
type Peer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewPeer(enc *json.Encoder) *Peer {
	return &Peer{enc: enc}
}

func (p *Peer) Send(f Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enc.Encode(f)
}
