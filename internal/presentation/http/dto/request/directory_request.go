package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	CompanyName  string  `json:"company_name" binding:"required,min=2,max=255"`
	DirectorName *string `json:"director_name" binding:"omitempty,max=255"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Notes        *string `json:"notes"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	CompanyName  *string `json:"company_name" binding:"omitempty,min=2,max=255"`
	DirectorName *string `json:"director_name" binding:"omitempty,max=255"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Notes        *string `json:"notes"`
}

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	FullName     string  `json:"full_name" binding:"required,min=2,max=255"`
	Phone        string  `json:"phone" binding:"required,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	CustomerType string  `json:"customer_type" binding:"omitempty,oneof=retail wholesale"`
	Notes        *string `json:"notes"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	FullName     *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	CustomerType *string `json:"customer_type" binding:"omitempty,oneof=retail wholesale"`
	Notes        *string `json:"notes"`
}

// ListFilterRequest is the shared search plus pagination query
type ListFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
