package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Category      string  `json:"category" binding:"required,max=100"`
	WoodType      string  `json:"wood_type" binding:"required,max=100"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	PurchasePrice int64   `json:"purchase_price" binding:"min=0"`
	SellingPrice  int64   `json:"selling_price" binding:"min=0"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"image_url"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Category      *string `json:"category" binding:"omitempty,max=100"`
	WoodType      *string `json:"wood_type" binding:"omitempty,max=100"`
	PurchasePrice *int64  `json:"purchase_price" binding:"omitempty,min=0"`
	SellingPrice  *int64  `json:"selling_price" binding:"omitempty,min=0"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"image_url"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	WoodType  string `form:"wood_type"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
