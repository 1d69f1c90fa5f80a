// Package clientview holds the eventually-consistent caches kept by
// connected dashboards. A view is seeded with a full reload on connect and
// reconciled with incremental events afterwards; a missed event is repaired
// by the next full reload, never by replay.
package clientview

import (
	"sort"
	"sync"

	"canteen-system/internal/domain"
)

// AdminView caches every order for the kitchen dashboard.
type AdminView struct {
	mu     sync.Mutex
	orders []domain.Order
	index  map[int]int
}

func NewAdminView() *AdminView {
	return &AdminView{index: make(map[int]int)}
}

// Seed replaces the cache wholesale. This is the baseline sync point after
// connect or reconnect.
func (v *AdminView) Seed(orders []domain.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.orders = append([]domain.Order(nil), orders...)
	v.index = make(map[int]int, len(orders))
	for i, o := range v.orders {
		v.index[o.ID] = i
	}
}

// ApplyCreated appends the order unless its id is already cached. Append
// rather than replace, so a concurrent local edit is never clobbered by the
// creation event.
func (v *AdminView) ApplyCreated(order domain.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.index[order.ID]; ok {
		return
	}
	v.index[order.ID] = len(v.orders)
	v.orders = append(v.orders, order)
}

// ApplyUpdated replaces the cached record entirely when the id is known and
// ignores the event otherwise (the cache was not seeded for it).
func (v *AdminView) ApplyUpdated(order domain.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i, ok := v.index[order.ID]; ok {
		v.orders[i] = order
	}
}

// Orders returns the cache sorted newest first, the way the dashboard
// displays it.
func (v *AdminView) Orders() []domain.Order {
	v.mu.Lock()
	out := append([]domain.Order(nil), v.orders...)
	v.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type Stats struct {
	Pending   int
	Preparing int
	Revenue   float64
}

// Stats recomputes the dashboard aggregates wholesale from the current
// cache. Correctness over efficiency; the cache is small.
func (v *AdminView) Stats() Stats {
	v.mu.Lock()
	defer v.mu.Unlock()
	var s Stats
	for _, o := range v.orders {
		switch o.Status {
		case domain.StatusPending:
			s.Pending++
		case domain.StatusPreparing:
			s.Preparing++
		}
		s.Revenue += o.Total
	}
	return s
}
