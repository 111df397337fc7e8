package request

// StockMovementRequest represents a manual stock in or out request
type StockMovementRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice int64   `json:"unit_price" binding:"min=0"`
	Reason    *string `json:"reason"`
}

// InventoryFilterRequest represents ledger filter parameters
type InventoryFilterRequest struct {
	Search    string `form:"search"`
	Type      string `form:"type" binding:"omitempty,oneof=in out"`
	ProductID string `form:"product_id" binding:"omitempty,uuid"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
