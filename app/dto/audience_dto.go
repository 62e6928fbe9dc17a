// Package dto contains Data Transfer Objects for API request and response structures
package dto

import (
	"strconv"
	"strings"

	"github.com/prospectra/lead-console/models"
)

// AudienceFilterRequest is the filter payload of the audience builder.
// Numeric fields arrive as strings because the console sends raw input
// values; empty strings and false toggles are dropped during normalization.
type AudienceFilterRequest struct {
	Industry    string `json:"industry,omitempty" example:"Information Technology"`
	CityID      string `json:"city_id,omitempty" example:"12"`
	JobLevel    string `json:"job_level,omitempty" example:"CXO"`
	Department  string `json:"department,omitempty" example:"Finance"`
	HasEmail    bool   `json:"has_email,omitempty" example:"true"`
	HasPhone    bool   `json:"has_phone,omitempty" example:"false"`
	EmployeeMin string `json:"employee_min,omitempty" example:"100"`
	EmployeeMax string `json:"employee_max,omitempty" example:"5000"`
	TextSearch  string `json:"text_search,omitempty" example:"bank"`
}

func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ToFilterSet converts the request payload into the typed filter set.
// Unparsable numeric values are treated as absent rather than rejected.
func (r AudienceFilterRequest) ToFilterSet() models.AudienceFilterSet {
	return models.AudienceFilterSet{
		Industry:    optionalString(r.Industry),
		CityID:      parseOptionalInt(r.CityID),
		JobLevel:    optionalString(r.JobLevel),
		Department:  optionalString(r.Department),
		HasEmail:    r.HasEmail,
		HasPhone:    r.HasPhone,
		EmployeeMin: parseOptionalInt(r.EmployeeMin),
		EmployeeMax: parseOptionalInt(r.EmployeeMax),
		TextSearch:  optionalString(r.TextSearch),
	}
}

// AudienceRowDTO is one contact row in audience search and preview responses
type AudienceRowDTO struct {
	ContactID   int64  `json:"contact_id" example:"42"`
	CompanyID   *int64 `json:"company_id,omitempty" example:"7"`
	CompanyName string `json:"company_name,omitempty" example:"Acme Industries"`
	Name        string `json:"name,omitempty" example:"Jane Cooper"`
	Email       string `json:"email,omitempty" example:"jane@acme.example"`
	Phone       string `json:"phone,omitempty" example:"+911234567890"`
	City        string `json:"city,omitempty" example:"Pune"`
	State       string `json:"state,omitempty" example:"Maharashtra"`
	Industry    string `json:"industry,omitempty" example:"Manufacturing"`
	JobLevel    string `json:"job_level,omitempty" example:"Manager"`
	Department  string `json:"department,omitempty" example:"Operations"`
}

// SearchAudienceRequest represents a paginated audience search
type SearchAudienceRequest struct {
	Filters  AudienceFilterRequest `json:"filters"`
	Page     int                   `json:"page" example:"1"`
	PageSize int                   `json:"page_size" example:"20"`
}

// SearchAudienceResponse represents one page of audience search results
type SearchAudienceResponse struct {
	Rows     []AudienceRowDTO `json:"rows"`
	Total    int64            `json:"total" example:"1543"`
	Page     int              `json:"page" example:"1"`
	PageSize int              `json:"page_size" example:"20"`
}

// PreviewAudienceRequest represents a preview window request. Seq is an
// opaque client token echoed back so the console can drop stale responses.
type PreviewAudienceRequest struct {
	Filters  AudienceFilterRequest `json:"filters"`
	Page     int                   `json:"page" example:"1"`
	PageSize int                   `json:"page_size" example:"20"`
	Seq      int64                 `json:"seq,omitempty" example:"17"`
}

// PreviewAudienceResponse represents a preview window of results
type PreviewAudienceResponse struct {
	Rows     []AudienceRowDTO `json:"rows"`
	Total    int64            `json:"total" example:"1543"`
	Page     int              `json:"page" example:"1"`
	PageSize int              `json:"page_size" example:"20"`
	Seq      int64            `json:"seq,omitempty" example:"17"`
}

// BuildAudienceRequest represents a request to materialize an audience
type BuildAudienceRequest struct {
	Filters AudienceFilterRequest `json:"filters"`
	Save    bool                  `json:"save" example:"true"`
	Name    *string               `json:"name,omitempty" example:"Q3 BFSI CXOs"`
	Notes   *string               `json:"notes,omitempty" example:"for the September mailer"`
}

// BuildAudienceResponse represents the outcome of an audience build
type BuildAudienceResponse struct {
	RunID        *string `json:"run_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	TotalResults int64   `json:"total_results" example:"1543"`
	Saved        bool    `json:"saved" example:"true"`
}

// AudienceRunDTO represents a saved audience run in responses
type AudienceRunDTO struct {
	ID           string         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name         *string        `json:"name,omitempty" example:"Q3 BFSI CXOs"`
	Notes        *string        `json:"notes,omitempty"`
	Filters      map[string]any `json:"filters"`
	Status       string         `json:"status" example:"completed"`
	TotalResults int64          `json:"total_results" example:"1543"`
	CreatedAt    string         `json:"created_at" example:"2025-06-02T10:30:00Z"`
	UpdatedAt    string         `json:"updated_at" example:"2025-06-02T10:30:00Z"`
}

// ListAudienceRunsResponse represents the saved run listing, newest first
type ListAudienceRunsResponse struct {
	Runs  []AudienceRunDTO `json:"runs"`
	Total int64            `json:"total" example:"8"`
}

// UpdateAudienceRunRequest patches the metadata of a saved run.
// Filters and result counts are immutable after the run is built.
type UpdateAudienceRunRequest struct {
	RunID string  `json:"-"`
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateAudienceRunResponse represents the patched run
type UpdateAudienceRunResponse struct {
	Run AudienceRunDTO `json:"run"`
}

// GetAudienceResultsResponse represents the full materialized result set of a run
type GetAudienceResultsResponse struct {
	RunID string           `json:"run_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Rows  []AudienceRowDTO `json:"rows"`
	Total int64            `json:"total" example:"1543"`
}
