package request

// OrderItemRequest represents one line of an order request. The client
// sends product and quantity only; prices come from the catalog.
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents an order placement request. Status
// defaults to completed (POS immediate sale); pending reserves the
// stock for a sale finished later.
type CreateOrderRequest struct {
	CustomerID     *string            `json:"customer_id" binding:"omitempty,uuid"`
	Status         string             `json:"status" binding:"omitempty,oneof=pending completed"`
	PaymentMethod  string             `json:"payment_method" binding:"omitempty,oneof=cash bank_transfer card"`
	DiscountAmount int64              `json:"discount_amount" binding:"min=0"`
	Notes          *string            `json:"notes"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
