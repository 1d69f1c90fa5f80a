package domain

import "time"

// Order is the authoritative record held by the order store. Item name and
// price are snapshotted from the menu at creation time, so later menu edits
// never change historical totals.
type Order struct {
	ID        int         `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Subtotal returns price x quantity for a single line.
func (i OrderItem) Subtotal() float64 { return i.Price * float64(i.Quantity) }

// ItemsTotal sums line subtotals; the submitted total must match it exactly.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// MenuItem is read-only reference data served to customers.
type MenuItem struct {
	ID          int     `json:"id"`
	CategoryID  int     `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"`
}

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

type UserStatus string

const (
	UserPending  UserStatus = "pending"
	UserApproved UserStatus = "approved"
	UserRejected UserStatus = "rejected"
)

// User is a restaurant admin account going through the approval workflow.
type User struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Role           UserRole   `json:"role"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	Status         UserStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}
