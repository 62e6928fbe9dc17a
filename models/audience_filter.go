package models

import (
	"github.com/prospectra/lead-console/utils"
)

// AudienceFilterSet is the closed set of criteria the audience builder accepts.
// Every field is optional; a zero-valued field is not a constraint.
// Numeric fields must already be parsed from their form representation before
// the set is normalized.
type AudienceFilterSet struct {
	Industry    *string
	CityID      *int
	JobLevel    *string
	Department  *string
	HasEmail    bool
	HasPhone    bool
	EmployeeMin *int
	EmployeeMax *int
	TextSearch  *string
}

// toMap produces the raw wire-shaped payload, empty values included.
func (f AudienceFilterSet) toMap() map[string]any {
	m := map[string]any{
		"has_email": f.HasEmail,
		"has_phone": f.HasPhone,
	}
	if f.Industry != nil {
		m["industry"] = *f.Industry
	}
	if f.CityID != nil {
		m["city_id"] = *f.CityID
	}
	if f.JobLevel != nil {
		m["job_level"] = *f.JobLevel
	}
	if f.Department != nil {
		m["department"] = *f.Department
	}
	if f.EmployeeMin != nil {
		m["employee_min"] = *f.EmployeeMin
	}
	if f.EmployeeMax != nil {
		m["employee_max"] = *f.EmployeeMax
	}
	if f.TextSearch != nil {
		m["text_search"] = *f.TextSearch
	}
	return m
}

// Normalized returns the canonical minimal filter payload: empty strings,
// false flags and absent fields are pruned. The result is what gets sent to
// the query service and what a run stores as its snapshot. Never nil; an
// unconstrained set normalizes to an empty map.
func (f AudienceFilterSet) Normalized() map[string]any {
	return utils.PruneEmptyMap(f.toMap())
}

// IsEmpty reports whether the set carries no active constraint.
func (f AudienceFilterSet) IsEmpty() bool {
	return len(f.Normalized()) == 0
}
