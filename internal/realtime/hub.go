package realtime

import "sync"

// Room names with routing policy attached to them. The hub itself treats all
// names as opaque; only the broadcaster knows these are special.
const (
	RoomAdmins      = "admins"
	RoomSuperAdmins = "super_admins"
)

// Hub tracks connected peers and their room memberships. Membership is
// ephemeral: it does not survive reconnection, so clients re-join after
// every connect.
type Hub struct {
	mu    sync.Mutex
	peers map[*Peer]struct{}
	rooms map[string]map[*Peer]struct{}
}

func NewHub() *Hub {
	return &Hub{
		peers: make(map[*Peer]struct{}),
		rooms: make(map[string]map[*Peer]struct{}),
	}
}

func (h *Hub) Connect(p *Peer) {
	h.mu.Lock()
	h.peers[p] = struct{}{}
	h.mu.Unlock()
}

// Disconnect removes the peer from the hub and from every room it joined, so
// no event is ever routed to a dead connection.
func (h *Hub) Disconnect(p *Peer) {
	h.mu.Lock()
	delete(h.peers, p)
	for name, members := range h.rooms {
		delete(members, p)
		if len(members) == 0 {
			delete(h.rooms, name)
		}
	}
	h.mu.Unlock()
}

// Join adds the peer to a room. Joining twice is a no-op.
func (h *Hub) Join(p *Peer, room string) {
	h.mu.Lock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Peer]struct{})
		h.rooms[room] = members
	}
	members[p] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Leave(p *Peer, room string) {
	h.mu.Lock()
	if members, ok := h.rooms[room]; ok {
		delete(members, p)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
}

// MembersOf returns a snapshot of the room's peers.
func (h *Hub) MembersOf(room string) []*Peer {
	h.mu.Lock()
	defer h.mu.Unlock()
	members := h.rooms[room]
	out := make([]*Peer, 0, len(members))
	for p := range members {
		out = append(out, p)
	}
	return out
}

// Everyone returns a snapshot of all connected peers, roomed or not.
func (h *Hub) Everyone() []*Peer {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Peer, 0, len(h.peers))
	for p := range h.peers {
		out = append(out, p)
	}
	return out
}
