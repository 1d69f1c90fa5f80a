package repository

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"canteen-system/internal/domain"
)

type OrderRepositoryInterface interface {
	AddOrder(items []domain.OrderItem, total float64) domain.Order
	GetOrder(id int) (domain.Order, error)
	GetAllOrders() []domain.Order
	UpdateStatus(id int, requested domain.Status) (domain.Order, error)
}

// OrderRepository is the single source of truth for orders. Records are kept
// in insertion order and never deleted within a process lifetime.
type OrderRepository struct {
	mu     sync.Mutex
	nextID atomic.Int64
	orders []domain.Order
	byID   map[int]int // id -> index into orders
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[int]int)}
}

// AddOrder assigns the next sequential id, forces status to pending and
// stamps the creation time. Id assignment is an atomic increment so no two
// concurrent submissions can ever share an id.
func (or *OrderRepository) AddOrder(items []domain.OrderItem, total float64) domain.Order {
	id := int(or.nextID.Add(1))
	order := domain.Order{
		ID:        id,
		Items:     append([]domain.OrderItem(nil), items...),
		Total:     total,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	or.mu.Lock()
	or.byID[id] = len(or.orders)
	or.orders = append(or.orders, order)
	or.mu.Unlock()
	return order
}

func (or *OrderRepository) GetOrder(id int) (domain.Order, error) {
	or.mu.Lock()
	defer or.mu.Unlock()
	idx, ok := or.byID[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	return or.orders[idx], nil
}

// GetAllOrders returns every order in store (insertion) order. Display
// ordering is the caller's concern.
func (or *OrderRepository) GetAllOrders() []domain.Order {
	or.mu.Lock()
	defer or.mu.Unlock()
	return append([]domain.Order(nil), or.orders...)
}

// UpdateStatus delegates legality to the status state machine and applies the
// result to the stored record.
func (or *OrderRepository) UpdateStatus(id int, requested domain.Status) (domain.Order, error) {
	or.mu.Lock()
	defer or.mu.Unlock()
	idx, ok := or.byID[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	next, err := domain.Transition(or.orders[idx].Status, requested)
	if err != nil {
		return domain.Order{}, err
	}
	or.orders[idx].Status = next
	return or.orders[idx], nil
}
