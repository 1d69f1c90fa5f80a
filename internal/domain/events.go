package domain

// Real-time event names on the websocket channel. The wire names predate this
// codebase and are shared with the dashboard clients.
const (
	EventOrderCreated = "new_order"
	EventOrderUpdated = "order_update"
	EventRegistration = "new_registration"
)
