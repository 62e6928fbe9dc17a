package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// QueryService is the client for the audience stored procedures. All heavy
// set operations run inside the database; this layer only shapes parameters
// and folds result rows into the canonical form.
type QueryService interface {
	// SearchAudience returns one page of matching contacts plus the total match count.
	SearchAudience(ctx context.Context, filters map[string]any, page, pageSize int) ([]models.AudienceResultRow, int64, error)
	// BuildAudience materializes the full result set. When save is true a run
	// row is persisted and its ID returned; otherwise the returned ID is nil.
	BuildAudience(ctx context.Context, filters map[string]any, save bool) (uuid.UUID, error)
	// PreviewAudience returns a limited window of results without persisting anything.
	PreviewAudience(ctx context.Context, filters map[string]any, limit, offset int) ([]models.AudienceResultRow, int64, error)
	// GetAudienceResults returns the materialized result set of a saved run.
	GetAudienceResults(ctx context.Context, runID uuid.UUID) ([]models.AudienceResultRow, error)
	// GetContactSummary returns dashboard aggregates over the contact base.
	GetContactSummary(ctx context.Context) (*models.ContactSummary, error)
}

// audienceRow is the raw row shape returned by the audience procedures.
// Older procedure versions return full_name and phone instead of the split
// name columns and mobile; both shapes are accepted and folded.
type audienceRow struct {
	ContactID   int64   `gorm:"column:contact_id"`
	CompanyID   *int64  `gorm:"column:company_id"`
	CompanyName *string `gorm:"column:company_name"`
	FirstName   *string `gorm:"column:first_name"`
	LastName    *string `gorm:"column:last_name"`
	FullName    *string `gorm:"column:full_name"`
	Email       *string `gorm:"column:email"`
	Phone       *string `gorm:"column:phone"`
	Mobile      *string `gorm:"column:mobile"`
	City        *string `gorm:"column:city"`
	State       *string `gorm:"column:state"`
	Industry    *string `gorm:"column:industry"`
	JobLevel    *string `gorm:"column:job_level"`
	Department  *string `gorm:"column:department"`
	TotalCount  int64   `gorm:"column:total_count"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toResultRow folds a raw procedure row into the canonical result shape.
// Legacy rows carry only full_name; it is split into the name fields here so
// no consumer has to handle both shapes.
func (r audienceRow) toResultRow() models.AudienceResultRow {
	row := models.AudienceResultRow{
		ContactID:   r.ContactID,
		CompanyID:   r.CompanyID,
		CompanyName: deref(r.CompanyName),
		FirstName:   deref(r.FirstName),
		LastName:    deref(r.LastName),
		FullName:    deref(r.FullName),
		Email:       deref(r.Email),
		Phone:       deref(r.Phone),
		City:        deref(r.City),
		State:       deref(r.State),
		Industry:    deref(r.Industry),
		JobLevel:    deref(r.JobLevel),
		Department:  deref(r.Department),
	}
	if row.Phone == "" {
		row.Phone = deref(r.Mobile)
	}
	if row.FirstName == "" && row.LastName == "" && row.FullName != "" {
		parts := strings.Fields(row.FullName)
		row.FirstName = parts[0]
		if len(parts) > 1 {
			row.LastName = strings.Join(parts[1:], " ")
		}
	}
	return row
}

func toResultRows(raw []audienceRow) ([]models.AudienceResultRow, int64) {
	rows := make([]models.AudienceResultRow, 0, len(raw))
	var total int64
	for _, r := range raw {
		rows = append(rows, r.toResultRow())
		if r.TotalCount > total {
			total = r.TotalCount
		}
	}
	return rows, total
}

// PostgresQueryService implements QueryService against the Postgres procedures
type PostgresQueryService struct {
	db *gorm.DB
}

// NewPostgresQueryService creates a query service bound to the given connection
func NewPostgresQueryService(db *gorm.DB) QueryService {
	return &PostgresQueryService{db: db}
}

func encodeFilters(filters map[string]any) (string, error) {
	if filters == nil {
		filters = map[string]any{}
	}
	raw, err := json.Marshal(filters)
	if err != nil {
		return "", fmt.Errorf("failed to encode filters: %w", err)
	}
	return string(raw), nil
}

// SearchAudience calls the search_audience procedure
func (s *PostgresQueryService) SearchAudience(ctx context.Context, filters map[string]any, page, pageSize int) ([]models.AudienceResultRow, int64, error) {
	payload, err := encodeFilters(filters)
	if err != nil {
		return nil, 0, err
	}

	var raw []audienceRow
	err = s.db.WithContext(ctx).
		Raw("SELECT * FROM search_audience(?::jsonb, ?, ?)", payload, page, pageSize).
		Scan(&raw).Error
	if err != nil {
		return nil, 0, fmt.Errorf("search_audience failed: %w", err)
	}

	rows, total := toResultRows(raw)
	return rows, total, nil
}

// BuildAudience calls the build_audience procedure
func (s *PostgresQueryService) BuildAudience(ctx context.Context, filters map[string]any, save bool) (uuid.UUID, error) {
	payload, err := encodeFilters(filters)
	if err != nil {
		return uuid.Nil, err
	}

	var result struct {
		RunID *uuid.UUID `gorm:"column:run_id"`
	}
	err = s.db.WithContext(ctx).
		Raw("SELECT run_id FROM build_audience(?::jsonb, ?)", payload, save).
		Scan(&result).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("build_audience failed: %w", err)
	}

	if result.RunID == nil {
		return uuid.Nil, nil
	}
	return *result.RunID, nil
}

// PreviewAudience calls the preview_audience procedure
func (s *PostgresQueryService) PreviewAudience(ctx context.Context, filters map[string]any, limit, offset int) ([]models.AudienceResultRow, int64, error) {
	payload, err := encodeFilters(filters)
	if err != nil {
		return nil, 0, err
	}

	var raw []audienceRow
	err = s.db.WithContext(ctx).
		Raw("SELECT * FROM preview_audience(?::jsonb, ?, ?)", payload, limit, offset).
		Scan(&raw).Error
	if err != nil {
		return nil, 0, fmt.Errorf("preview_audience failed: %w", err)
	}

	rows, total := toResultRows(raw)
	return rows, total, nil
}

// GetAudienceResults calls the get_audience_results procedure
func (s *PostgresQueryService) GetAudienceResults(ctx context.Context, runID uuid.UUID) ([]models.AudienceResultRow, error) {
	var raw []audienceRow
	err := s.db.WithContext(ctx).
		Raw("SELECT * FROM get_audience_results(?)", runID).
		Scan(&raw).Error
	if err != nil {
		return nil, fmt.Errorf("get_audience_results failed: %w", err)
	}

	rows, _ := toResultRows(raw)
	return rows, nil
}

// GetContactSummary calls the get_contact_summary procedure
func (s *PostgresQueryService) GetContactSummary(ctx context.Context) (*models.ContactSummary, error) {
	var summary models.ContactSummary
	err := s.db.WithContext(ctx).
		Raw("SELECT * FROM get_contact_summary()").
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("get_contact_summary failed: %w", err)
	}
	return &summary, nil
}
