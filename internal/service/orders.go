package service

import (
	"fmt"
	"math"

	"canteen-system/internal/common/logger"
	"canteen-system/internal/domain"
	"canteen-system/internal/repository"
)

type OrderServiceInterface interface {
	AddOrder(req domain.CreateOrderRequest) (domain.Order, error)
	GetAllOrders() []domain.Order
	GetOrder(id int) (domain.Order, error)
	UpdateStatus(id int, status string) (domain.Order, error)
}

type OrderService struct {
	repo   repository.OrderRepositoryInterface
	events EventPublisher
	lg     *logger.Logger
}

func NewOrderService(repo repository.OrderRepositoryInterface, events EventPublisher, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{repo: repo, events: events, lg: lg}
}

// AddOrder validates the submission, stores the order and publishes
// new_order to the admins room before returning.
func (or *OrderService) AddOrder(req domain.CreateOrderRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("%w: invalid quantity for item %q", domain.ErrValidation, item.Name)
		}
		if item.Price <= 0 {
			return domain.Order{}, fmt.Errorf("%w: invalid price for item %q", domain.ErrValidation, item.Name)
		}
	}
	// The client computes the total; accept it only when it matches the item
	// subtotals to the cent.
	if !sameAmount(req.Total, domain.ItemsTotal(req.Items)) {
		return domain.Order{}, fmt.Errorf("%w: total %.2f does not match item subtotals %.2f",
			domain.ErrValidation, req.Total, domain.ItemsTotal(req.Items))
	}

	order := or.repo.AddOrder(req.Items, req.Total)
	or.events.PublishOrderCreated(order)
	or.lg.Info("order_created", map[string]any{"order_id": order.ID, "total": order.Total})
	return order, nil
}

func (or *OrderService) GetAllOrders() []domain.Order {
	return or.repo.GetAllOrders()
}

func (or *OrderService) GetOrder(id int) (domain.Order, error) {
	return or.repo.GetOrder(id)
}

// UpdateStatus drives the status state machine and publishes order_update on
// success.
func (or *OrderService) UpdateStatus(id int, status string) (domain.Order, error) {
	order, err := or.repo.UpdateStatus(id, domain.Status(status))
	if err != nil {
		return domain.Order{}, err
	}
	or.events.PublishOrderUpdated(order)
	or.lg.Info("order_status_changed", map[string]any{"order_id": order.ID, "status": order.Status})
	return order, nil
}

func sameAmount(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
