package models

import (
	"time"

	"github.com/google/uuid"
)

// CampaignFile is a working contact list inside a campaign, filled by
// allocating rows from a saved audience run
type CampaignFile struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampaignID        uuid.UUID `gorm:"type:uuid;not null;index:idx_campaign_files_campaign_id" json:"campaign_id"`
	FileName          string    `gorm:"size:255;not null" json:"file_name"`
	Description       *string   `gorm:"type:text" json:"description,omitempty"`
	TotalContacts     int       `gorm:"not null;default:0" json:"total_contacts"`
	AllocatedContacts int       `gorm:"not null;default:0" json:"allocated_contacts"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (CampaignFile) TableName() string { return "campaign_files" }

// CampaignFileContact is one allocated contact inside a campaign file.
// Columns are a point-in-time denormalized snapshot, not live references:
// later edits to the contact or company do not retroactively change an
// allocation. The enrichment columns are only populated for full-enrichment
// allocations and stay null otherwise.
type CampaignFileContact struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;type:bigserial" json:"id"`
	CampaignFileID uuid.UUID `gorm:"type:uuid;not null;index:idx_campaign_file_contacts_file_id" json:"campaign_file_id"`
	ContactID      int64     `gorm:"not null" json:"contact_id"`
	CompanyID      *int64    `json:"company_id,omitempty"`

	FirstName   *string `gorm:"size:100" json:"first_name,omitempty"`
	LastName    *string `gorm:"size:100" json:"last_name,omitempty"`
	Email       *string `gorm:"size:255" json:"email,omitempty"`
	Phone       *string `gorm:"size:30" json:"phone,omitempty"`
	CompanyName *string `gorm:"size:255" json:"company_name,omitempty"`
	City        *string `gorm:"size:100" json:"city,omitempty"`
	State       *string `gorm:"size:100" json:"state,omitempty"`
	Industry    *string `gorm:"size:255" json:"industry,omitempty"`
	JobLevel    *string `gorm:"size:100" json:"job_level,omitempty"`
	Department  *string `gorm:"size:100" json:"department,omitempty"`

	// Enrichment snapshot joined from the contact/company masters
	Designation   *string  `gorm:"size:255" json:"designation,omitempty"`
	Website       *string  `gorm:"size:255" json:"website,omitempty"`
	TurnoverINRCr *float64 `gorm:"column:turn_over_inr_cr" json:"turn_over_inr_cr,omitempty"`
	PostalAddress *string  `gorm:"size:512" json:"postal_address,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (CampaignFileContact) TableName() string { return "campaign_file_contacts" }

// CampaignAudienceAllocation records that a run was allocated into a campaign.
// Append-only; rows are never updated after the allocation batch commits.
type CampaignAudienceAllocation struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;type:bigserial" json:"id"`
	RunID          uuid.UUID `gorm:"type:uuid;not null;index:idx_campaign_audience_allocations_run_id" json:"run_id"`
	CampaignID     uuid.UUID `gorm:"type:uuid;not null;index:idx_campaign_audience_allocations_campaign_id" json:"campaign_id"`
	AllocatedCount int       `gorm:"not null" json:"allocated_count"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (CampaignAudienceAllocation) TableName() string { return "campaign_audience_allocations" }
