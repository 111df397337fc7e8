package request

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required,min=2,max=255"`
	Position       string  `json:"position" binding:"required,max=100"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	BaseSalary     int64   `json:"base_salary" binding:"min=0"`
	StartDate      *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	BirthYear      *int    `json:"birth_year" binding:"omitempty,min=1900,max=2100"`
	IDNumber       *string `json:"id_number" binding:"omitempty,max=50"`
	Hometown       *string `json:"hometown" binding:"omitempty,max=255"`
	CurrentAddress *string `json:"current_address"`
	UserID         *string `json:"user_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest represents an employee update request
type UpdateEmployeeRequest struct {
	FullName       *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Position       *string `json:"position" binding:"omitempty,max=100"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	BaseSalary     *int64  `json:"base_salary" binding:"omitempty,min=0"`
	StartDate      *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	BirthYear      *int    `json:"birth_year" binding:"omitempty,min=1900,max=2100"`
	IDNumber       *string `json:"id_number" binding:"omitempty,max=50"`
	Hometown       *string `json:"hometown" binding:"omitempty,max=255"`
	CurrentAddress *string `json:"current_address"`
	UserID         *string `json:"user_id" binding:"omitempty,uuid"`
}
