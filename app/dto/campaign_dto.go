package dto

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=255" example:"September Mailer"`
	ClientName    *string `json:"client_name,omitempty" validate:"omitempty,max=255" example:"Acme Industries"`
	ServicingLead *string `json:"servicing_lead,omitempty" validate:"omitempty,max=255" example:"R. Mehta"`
	StartDate     *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-09-01"`
	EndDate       *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-09-30"`
	ListSize      *int64  `json:"list_size,omitempty" validate:"omitempty,gte=0" example:"5000"`
}

// UpdateCampaignRequest represents the request to update an existing campaign
type UpdateCampaignRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	ClientName    *string `json:"client_name,omitempty" validate:"omitempty,max=255"`
	ServicingLead *string `json:"servicing_lead,omitempty" validate:"omitempty,max=255"`
	StartDate     *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ListSize      *int64  `json:"list_size,omitempty" validate:"omitempty,gte=0"`
}

// CampaignDTO represents a campaign in responses
type CampaignDTO struct {
	ID            string  `json:"id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Name          string  `json:"name" example:"September Mailer"`
	ClientName    *string `json:"client_name,omitempty"`
	ServicingLead *string `json:"servicing_lead,omitempty"`
	StartDate     *string `json:"start_date,omitempty" example:"2025-09-01"`
	EndDate       *string `json:"end_date,omitempty" example:"2025-09-30"`
	ListSize      *int64  `json:"list_size,omitempty" example:"5000"`
	CreatedAt     string  `json:"created_at" example:"2025-06-02T10:30:00Z"`
}

// ListCampaignsResponse represents a page of campaigns
type ListCampaignsResponse struct {
	Campaigns []CampaignDTO `json:"campaigns"`
	Total     int64         `json:"total" example:"12"`
}
