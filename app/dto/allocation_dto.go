package dto

// AllocateAudienceRequest represents a request to allocate contacts of a
// saved run into a new campaign file
type AllocateAudienceRequest struct {
	RunID       string  `json:"run_id" validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	CampaignID  string  `json:"campaign_id" validate:"required,uuid" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	FileName    string  `json:"file_name" validate:"required,min=1,max=255" example:"bfsi-wave-1.csv"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Limit       int64   `json:"limit" validate:"required,gt=0" example:"500"`
	Enrich      bool    `json:"enrich" example:"true"`
}

// AllocateAudienceResponse represents the outcome of an allocation
type AllocateAudienceResponse struct {
	FileID    string `json:"file_id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Allocated int64  `json:"allocated" example:"500"`
}

// CampaignFileDTO represents a campaign file in responses
type CampaignFileDTO struct {
	ID                string  `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	CampaignID        string  `json:"campaign_id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	FileName          string  `json:"file_name" example:"bfsi-wave-1.csv"`
	Description       *string `json:"description,omitempty"`
	TotalContacts     int64   `json:"total_contacts" example:"500"`
	AllocatedContacts int64   `json:"allocated_contacts" example:"500"`
	CreatedAt         string  `json:"created_at" example:"2025-06-02T10:30:00Z"`
}

// ListCampaignFilesResponse represents the file listing of a campaign
type ListCampaignFilesResponse struct {
	Files []CampaignFileDTO `json:"files"`
}

// AllocationDTO represents one allocation ledger entry
type AllocationDTO struct {
	ID             string `json:"id"`
	RunID          string `json:"run_id"`
	CampaignID     string `json:"campaign_id"`
	AllocatedCount int64  `json:"allocated_count" example:"500"`
	CreatedAt      string `json:"created_at" example:"2025-06-02T10:30:00Z"`
}

// ListAllocationsResponse represents the allocation history of a run
type ListAllocationsResponse struct {
	Allocations    []AllocationDTO `json:"allocations"`
	TotalAllocated int64           `json:"total_allocated" example:"1200"`
}
