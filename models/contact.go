package models

import (
	"strings"
	"time"
)

// Contact represents a row of the contact_master table
// All demographic columns are nullable; contacts are frequently imported from
// spreadsheets with partial data
type Contact struct {
	ContactID         int64   `gorm:"column:contact_id;primaryKey;autoIncrement;type:bigserial" json:"contact_id"`
	CompanyID         *int64  `gorm:"column:company_id;index:idx_contact_master_company_id" json:"company_id,omitempty"`
	Salute            *string `gorm:"size:20" json:"salute,omitempty"`
	FirstName         *string `gorm:"size:100;index:idx_contact_master_first_name" json:"first_name,omitempty"`
	LastName          *string `gorm:"size:100" json:"last_name,omitempty"`
	Designation       *string `gorm:"size:255" json:"designation,omitempty"`
	Department        *string `gorm:"size:100;index:idx_contact_master_department" json:"department,omitempty"`
	JobLevel          *string `gorm:"size:100;index:idx_contact_master_job_level" json:"job_level,omitempty"`
	Specialization    *string `gorm:"size:255" json:"specialization,omitempty"`
	OfficialEmailID   *string `gorm:"size:255;index:idx_contact_master_official_email" json:"official_email_id,omitempty"`
	PersonalEmailID   *string `gorm:"size:255" json:"personal_email_id,omitempty"`
	MobileNumber      *string `gorm:"size:30" json:"mobile_number,omitempty"`
	DirectPhoneNumber *string `gorm:"size:30" json:"direct_phone_number,omitempty"`
	Gender            *string `gorm:"size:20" json:"gender,omitempty"`

	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_contact_master_created_at" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (Contact) TableName() string { return "contact_master" }

// FullName joins the available name parts for display
func (c *Contact) FullName() string {
	parts := make([]string, 0, 2)
	if c.FirstName != nil && *c.FirstName != "" {
		parts = append(parts, *c.FirstName)
	}
	if c.LastName != nil && *c.LastName != "" {
		parts = append(parts, *c.LastName)
	}
	return strings.Join(parts, " ")
}

// ContactFilter represents filter criteria for contact queries
type ContactFilter struct {
	ContactID       *int64
	CompanyID       *int64
	Department      *string
	JobLevel        *string
	OfficialEmailID *string
	TextSearch      *string
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
}
