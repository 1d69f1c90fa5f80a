package handlers

import (
	"net/http"

	"canteen-system/internal/common/logger"
	"canteen-system/internal/service"
)

type Handler struct {
	Orders *OrderHandler
	Users  *UserHandler
	Menu   *MenuHandler
}

func New(svc *service.Service, menu MenuSource, lg *logger.Logger) *Handler {
	return &Handler{
		Orders: NewOrderHandler(svc.Orders, lg),
		Users:  NewUserHandler(svc.Users, lg),
		Menu:   NewMenuHandler(menu),
	}
}

// Router mounts the JSON API and the websocket endpoint on one mux.
func Router(h *Handler, ws http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu", h.Menu.GetMenu)
	mux.HandleFunc("POST /api/order", h.Orders.AddOrder)
	mux.HandleFunc("GET /api/orders/all", h.Orders.GetAllOrders)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.Orders.UpdateStatus)
	mux.HandleFunc("POST /api/register", h.Users.Register)
	mux.HandleFunc("GET /api/users/pending", h.Users.GetPending)
	mux.HandleFunc("PATCH /api/users/{id}/approve", h.Users.Approve)
	mux.Handle("GET /ws", ws)
	return mux
}
