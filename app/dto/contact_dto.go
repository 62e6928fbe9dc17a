package dto

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	CompanyID         *int64  `json:"company_id,omitempty"`
	Salute            *string `json:"salute,omitempty" validate:"omitempty,max=20"`
	FirstName         *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName          *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Designation       *string `json:"designation,omitempty" validate:"omitempty,max=255"`
	Department        *string `json:"department,omitempty" validate:"omitempty,max=100"`
	JobLevel          *string `json:"job_level,omitempty" validate:"omitempty,max=100"`
	Specialization    *string `json:"specialization,omitempty" validate:"omitempty,max=255"`
	OfficialEmailID   *string `json:"official_email_id,omitempty" validate:"omitempty,email,max=255"`
	PersonalEmailID   *string `json:"personal_email_id,omitempty" validate:"omitempty,email,max=255"`
	MobileNumber      *string `json:"mobile_number,omitempty" validate:"omitempty,max=30"`
	DirectPhoneNumber *string `json:"direct_phone_number,omitempty" validate:"omitempty,max=30"`
	Gender            *string `json:"gender,omitempty" validate:"omitempty,max=20"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	ContactID int64 `json:"-"`
	CreateContactRequest
}

// ContactDTO represents a contact in responses
type ContactDTO struct {
	ContactID         int64   `json:"contact_id" example:"42"`
	CompanyID         *int64  `json:"company_id,omitempty" example:"7"`
	CompanyName       string  `json:"company_name,omitempty" example:"Acme Industries"`
	Salute            *string `json:"salute,omitempty"`
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Designation       *string `json:"designation,omitempty"`
	Department        *string `json:"department,omitempty"`
	JobLevel          *string `json:"job_level,omitempty"`
	Specialization    *string `json:"specialization,omitempty"`
	OfficialEmailID   *string `json:"official_email_id,omitempty"`
	PersonalEmailID   *string `json:"personal_email_id,omitempty"`
	MobileNumber      *string `json:"mobile_number,omitempty"`
	DirectPhoneNumber *string `json:"direct_phone_number,omitempty"`
	Gender            *string `json:"gender,omitempty"`
	CreatedAt         string  `json:"created_at" example:"2025-06-02T10:30:00Z"`
}

// ListContactsRequest represents a paginated contact listing with filters
type ListContactsRequest struct {
	CompanyID  *int64  `json:"company_id,omitempty"`
	Department *string `json:"department,omitempty"`
	JobLevel   *string `json:"job_level,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page       int     `json:"page" example:"1"`
	PageSize   int     `json:"page_size" example:"20"`
}

// ListContactsResponse represents a page of contacts
type ListContactsResponse struct {
	Contacts []ContactDTO `json:"contacts"`
	Total    int64        `json:"total" example:"3200"`
	Page     int          `json:"page" example:"1"`
	PageSize int          `json:"page_size" example:"20"`
}
