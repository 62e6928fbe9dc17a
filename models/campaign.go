package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a marketing campaign that audience runs are allocated into
type Campaign struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	ClientName    string    `gorm:"size:255;not null" json:"client_name"`
	ServicingLead string    `gorm:"size:255;not null" json:"servicing_lead"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	ListSize      int       `gorm:"not null;default:0" json:"list_size"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_campaigns_created_at" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (Campaign) TableName() string { return "campaigns" }

// CampaignFilter represents filter criteria for campaign queries
type CampaignFilter struct {
	ID            *uuid.UUID
	Name          *string
	ClientName    *string
	ActiveOn      *time.Time
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
