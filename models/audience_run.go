package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the lifecycle status of an audience run
type RunStatus string

const (
	RunStatusDraft     RunStatus = "draft"
	RunStatusCompleted RunStatus = "completed"
)

// String returns the string representation of the status
func (s RunStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusDraft, RunStatusCompleted:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for RunStatus
func (s *RunStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = RunStatus(v)
	case []byte:
		*s = RunStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into RunStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for RunStatus
func (s RunStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid RunStatus: %s", s)
	}
	return string(s), nil
}

// FilterSnapshot is the normalized filter payload frozen onto a run at build
// time, stored as a JSONB column
type FilterSnapshot map[string]any

// Value implements the driver.Valuer interface for FilterSnapshot
func (f FilterSnapshot) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal(map[string]any{})
	}
	return json.Marshal(map[string]any(f))
}

// Scan implements the sql.Scanner interface for FilterSnapshot
func (f *FilterSnapshot) Scan(value any) error {
	if value == nil {
		*f = FilterSnapshot{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FilterSnapshot", value)
	}

	return json.Unmarshal(bytes, f)
}

// AudienceRun is a named, persisted audience build: a frozen filter snapshot
// plus the result count the query service recorded at build time.
// Filters are immutable after the build; only Name and Notes may be patched.
type AudienceRun struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         *string        `gorm:"size:255" json:"name,omitempty"`
	Notes        *string        `gorm:"type:text" json:"notes,omitempty"`
	Filters      FilterSnapshot `gorm:"type:jsonb;not null;default:'{}'" json:"filters"`
	Status       RunStatus      `gorm:"size:20;not null;default:'draft'" json:"status"`
	TotalResults int64          `gorm:"not null;default:0" json:"total_results"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_audience_runs_created_at" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (AudienceRun) TableName() string { return "audience_runs" }

// AudienceRunFilter represents filter criteria for audience run queries
type AudienceRunFilter struct {
	ID            *uuid.UUID
	Name          *string
	Status        *RunStatus
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
