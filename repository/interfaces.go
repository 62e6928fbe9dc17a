// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id int64) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// ContactRepository defines operations for contacts
type ContactRepository interface {
	Repository[models.Contact, models.ContactFilter]
	ByOfficialEmail(ctx context.Context, email string) (*models.Contact, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, contactID int64) error
	Summary(ctx context.Context) (*models.ContactSummary, error)
}

// CompanyRepository defines operations for companies
type CompanyRepository interface {
	Repository[models.Company, models.CompanyFilter]
	ByName(ctx context.Context, name string) (*models.Company, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, companyID int64) error
}

// CampaignRepository defines operations for campaigns
type CampaignRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	ByFilter(ctx context.Context, filter models.CampaignFilter, orderBy string, limit, offset int) ([]*models.Campaign, error)
	Save(ctx context.Context, campaign *models.Campaign) error
	Count(ctx context.Context, filter models.CampaignFilter) (int64, error)
	CountActiveOn(ctx context.Context, day time.Time) (int64, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AudienceRunRepository defines operations for audience runs
type AudienceRunRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.AudienceRun, error)
	List(ctx context.Context, filter models.AudienceRunFilter, limit, offset int) ([]*models.AudienceRun, error)
	Save(ctx context.Context, run *models.AudienceRun) error
	Count(ctx context.Context, filter models.AudienceRunFilter) (int64, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, name, notes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteStaleDrafts(ctx context.Context, before time.Time) (int64, error)
}

// CampaignFileRepository defines operations for campaign files and their allocations
type CampaignFileRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.CampaignFile, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.CampaignFile, error)
	Save(ctx context.Context, file *models.CampaignFile) error
	SaveContactsBatch(ctx context.Context, contacts []*models.CampaignFileContact) error
	SetAllocatedCount(ctx context.Context, fileID uuid.UUID, allocated int64) error
	RecordAllocation(ctx context.Context, allocation *models.CampaignAudienceAllocation) error
	ListAllocationsByRun(ctx context.Context, runID uuid.UUID) ([]*models.CampaignAudienceAllocation, error)
}

// MasterDataRepository defines read and maintenance operations for the master tables
type MasterDataRepository interface {
	ListCities(ctx context.Context) ([]*models.City, error)
	ListIndustries(ctx context.Context) ([]*models.Industry, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	ListJobLevels(ctx context.Context) ([]*models.JobLevel, error)
	ListEmployeeRanges(ctx context.Context) ([]*models.EmployeeRange, error)
	ListTurnoverRanges(ctx context.Context) ([]*models.TurnoverRange, error)
	SaveCity(ctx context.Context, city *models.City) error
	SaveIndustry(ctx context.Context, industry *models.Industry) error
	SaveDepartment(ctx context.Context, department *models.Department) error
	SaveJobLevel(ctx context.Context, level *models.JobLevel) error
	SaveEmployeeRange(ctx context.Context, rng *models.EmployeeRange) error
	SaveTurnoverRange(ctx context.Context, rng *models.TurnoverRange) error
	DeleteCity(ctx context.Context, cityID int64) error
	DeleteIndustry(ctx context.Context, industryID int64) error
	DeleteDepartment(ctx context.Context, id int64) error
	DeleteJobLevel(ctx context.Context, id int64) error
	DeleteEmployeeRange(ctx context.Context, id int64) error
	DeleteTurnoverRange(ctx context.Context, id int64) error
}

// UserRepository defines operations for console users
type UserRepository interface {
	Repository[models.User, models.UserFilter]
	ByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID uint) error
}
