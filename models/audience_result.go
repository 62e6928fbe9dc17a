package models

import (
	"strings"
)

// AudienceResultRow is the canonical contact-level projection returned by the
// audience query service. The service's stored procedures have shipped two row
// shapes over time (first_name/last_name/phone vs full_name/mobile); the query
// service adapter folds both into this one type and the ambiguity never
// propagates past that boundary.
type AudienceResultRow struct {
	ContactID   int64  `json:"contact_id"`
	CompanyID   *int64 `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Industry    string `json:"industry,omitempty"`
	JobLevel    string `json:"job_level,omitempty"`
	Department  string `json:"department,omitempty"`
}

// DisplayName prefers the precomputed full name and falls back to joining the
// name parts.
func (r AudienceResultRow) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	parts := make([]string, 0, 2)
	if r.FirstName != "" {
		parts = append(parts, r.FirstName)
	}
	if r.LastName != "" {
		parts = append(parts, r.LastName)
	}
	return strings.Join(parts, " ")
}

// ContactSummary is the aggregate returned by the get_contact_summary RPC.
type ContactSummary struct {
	Total      int64 `json:"total"`
	WithEmail  int64 `json:"with_email"`
	WithMobile int64 `json:"with_mobile"`
	New30d     int64 `json:"new_30d"`
}
