package dto

// DashboardResponse represents the console landing page aggregates
type DashboardResponse struct {
	TotalContacts   int64 `json:"total_contacts" example:"45210"`
	WithEmail       int64 `json:"with_email" example:"39870"`
	WithMobile      int64 `json:"with_mobile" example:"30110"`
	NewLast30Days   int64 `json:"new_last_30_days" example:"820"`
	TotalCompanies  int64 `json:"total_companies" example:"5120"`
	TotalCampaigns  int64 `json:"total_campaigns" example:"34"`
	ActiveCampaigns int64 `json:"active_campaigns" example:"6"`
	SavedRuns       int64 `json:"saved_runs" example:"18"`
}
