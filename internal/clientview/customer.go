package clientview

import (
	"errors"
	"sync"

	"canteen-system/internal/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrSubmitInFlight  = errors.New("a submission is already in flight")
	ErrNothingInFlight = errors.New("no submission in flight")
)

// CustomerCart models the customer's optimistic submission as an explicit
// two-phase state: Stage moves the cart into an in-flight snapshot, then the
// outcome either Confirms (drop the snapshot) or Rolls back (restore the
// cart exactly as it was).
type CustomerCart struct {
	mu     sync.Mutex
	items  []domain.OrderItem
	staged []domain.OrderItem
}

func NewCustomerCart() *CustomerCart {
	return &CustomerCart{}
}

// Add merges by menu item id, bumping quantity for repeat picks.
func (c *CustomerCart) Add(item domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].MenuItemID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, domain.OrderItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
}

// Adjust changes a line's quantity by delta, removing the line at zero.
func (c *CustomerCart) Adjust(menuItemID, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].MenuItemID != menuItemID {
			continue
		}
		c.items[i].Quantity += delta
		if c.items[i].Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return
	}
}

func (c *CustomerCart) Items() []domain.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.OrderItem(nil), c.items...)
}

func (c *CustomerCart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ItemsTotal(c.items)
}

// Stage snapshots the cart for submission and empties it locally. Only one
// submission may be in flight at a time.
func (c *CustomerCart) Stage() (domain.CreateOrderRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged != nil {
		return domain.CreateOrderRequest{}, ErrSubmitInFlight
	}
	if len(c.items) == 0 {
		return domain.CreateOrderRequest{}, ErrEmptyCart
	}
	c.staged = c.items
	c.items = nil
	return domain.CreateOrderRequest{
		Items: append([]domain.OrderItem(nil), c.staged...),
		Total: domain.ItemsTotal(c.staged),
	}, nil
}

// Confirm drops the in-flight snapshot after the server accepted the order.
func (c *CustomerCart) Confirm() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return ErrNothingInFlight
	}
	c.staged = nil
	return nil
}

// Rollback restores the staged items in front of anything added since, so a
// failed submission loses nothing.
func (c *CustomerCart) Rollback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return ErrNothingInFlight
	}
	c.items = append(c.staged, c.items...)
	c.staged = nil
	return nil
}
