package realtime

import (
	"canteen-system/internal/common/logger"
	"canteen-system/internal/domain"
)

// Broadcaster owns the routing policy for order lifecycle events. Delivery is
// fire-and-forget: a failed write is logged and dropped, and a disconnected
// endpoint reconciles via a full reload when it comes back.
type Broadcaster struct {
	hub *Hub
	lg  *logger.Logger
}

func NewBroadcaster(hub *Hub, lg *logger.Logger) *Broadcaster {
	return &Broadcaster{hub: hub, lg: lg}
}

// PublishOrderCreated notifies the admins room only. The submitting customer
// already has the order from its own response, so delivering it again would
// duplicate the entry client-side.
func (b *Broadcaster) PublishOrderCreated(order domain.Order) {
	b.deliver(b.hub.MembersOf(RoomAdmins), Frame{Type: domain.EventOrderCreated, Payload: order}, map[string]any{"order_id": order.ID})
}

// PublishOrderUpdated notifies every connected endpoint, not just interested
// parties. Narrowing this to the owning customer room plus admins is a
// routing change local to this method; see DESIGN.md.
func (b *Broadcaster) PublishOrderUpdated(order domain.Order) {
	b.deliver(b.hub.Everyone(), Frame{Type: domain.EventOrderUpdated, Payload: order}, map[string]any{"order_id": order.ID, "status": order.Status})
}

// PublishRegistration notifies super admins of a new account awaiting
// approval.
func (b *Broadcaster) PublishRegistration(user domain.User) {
	b.deliver(b.hub.MembersOf(RoomSuperAdmins), Frame{Type: domain.EventRegistration, Payload: user}, map[string]any{"user_id": user.ID})
}

func (b *Broadcaster) deliver(peers []*Peer, f Frame, fields map[string]any) {
	for _, p := range peers {
		if err := p.Send(f); err != nil {
			b.lg.Error("event_delivery_failed", err, map[string]any{"event": f.Type})
		}
	}
	fields["event"] = f.Type
	fields["endpoints"] = len(peers)
	b.lg.Debug("event_published", fields)
}
