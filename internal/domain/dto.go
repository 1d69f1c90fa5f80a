package domain

type CreateOrderRequest struct {
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

type CreateOrderResponse struct {
	Success bool `json:"success"`
	OrderID int  `json:"orderId"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username       string `json:"username"`
	RestaurantName string `json:"restaurant_name"`
}

type ApproveUserRequest struct {
	Status string `json:"status"` // approved | rejected
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
