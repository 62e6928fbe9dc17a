package dto

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	CompanyName         string   `json:"company_name" validate:"required,min=1,max=255" example:"Acme Industries"`
	Industry            *string  `json:"industry,omitempty" validate:"omitempty,max=255"`
	Headquarters        *string  `json:"headquarters,omitempty" validate:"omitempty,max=255"`
	AddressType         *string  `json:"address_type,omitempty" validate:"omitempty,max=50"`
	PostalAddress1      *string  `json:"postal_address_1,omitempty" validate:"omitempty,max=255"`
	PostalAddress2      *string  `json:"postal_address_2,omitempty" validate:"omitempty,max=255"`
	PostalAddress3      *string  `json:"postal_address_3,omitempty" validate:"omitempty,max=255"`
	STD                 *string  `json:"std,omitempty" validate:"omitempty,max=20"`
	Phone1              *string  `json:"phone_1,omitempty" validate:"omitempty,max=30"`
	Phone2              *string  `json:"phone_2,omitempty" validate:"omitempty,max=30"`
	Fax                 *string  `json:"fax,omitempty" validate:"omitempty,max=30"`
	CompanyMobileNumber *string  `json:"company_mobile_number,omitempty" validate:"omitempty,max=30"`
	CommonEmailID       *string  `json:"common_email_id,omitempty" validate:"omitempty,email,max=255"`
	Website             *string  `json:"website,omitempty" validate:"omitempty,max=255"`
	NoOfEmployeesTotal  *int     `json:"no_of_employees_total,omitempty" validate:"omitempty,gte=0"`
	TurnoverINRCr       *float64 `json:"turn_over_inr_cr,omitempty" validate:"omitempty,gte=0"`
	NoOfOfficesTotal    *int     `json:"no_of_offices_total,omitempty" validate:"omitempty,gte=0"`
	NoOfBranchOffices   *int     `json:"no_of_branch_offices,omitempty" validate:"omitempty,gte=0"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	CompanyID int64 `json:"-"`
	CreateCompanyRequest
}

// CompanyDTO represents a company in responses
type CompanyDTO struct {
	CompanyID           int64    `json:"company_id" example:"7"`
	CompanyName         *string  `json:"company_name,omitempty"`
	Industry            *string  `json:"industry,omitempty"`
	Headquarters        *string  `json:"headquarters,omitempty"`
	Website             *string  `json:"website,omitempty"`
	CommonEmailID       *string  `json:"common_email_id,omitempty"`
	CompanyMobileNumber *string  `json:"company_mobile_number,omitempty"`
	NoOfEmployeesTotal  *int     `json:"no_of_employees_total,omitempty"`
	TurnoverINRCr       *float64 `json:"turn_over_inr_cr,omitempty"`
	CreatedAt           string   `json:"created_at" example:"2025-06-02T10:30:00Z"`
}

// ListCompaniesRequest represents a paginated company listing with filters
type ListCompaniesRequest struct {
	Industry *string `json:"industry,omitempty"`
	Search   *string `json:"search,omitempty"`
	Page     int     `json:"page" example:"1"`
	PageSize int     `json:"page_size" example:"20"`
}

// ListCompaniesResponse represents a page of companies
type ListCompaniesResponse struct {
	Companies []CompanyDTO `json:"companies"`
	Total     int64        `json:"total" example:"820"`
	Page      int          `json:"page" example:"1"`
	PageSize  int          `json:"page_size" example:"20"`
}
