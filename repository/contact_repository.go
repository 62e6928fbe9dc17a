package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// ContactRepositoryImpl implements ContactRepository interface
type ContactRepositoryImpl struct {
	*BaseRepository[models.Contact, models.ContactFilter]
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Contact, models.ContactFilter](db),
	}
}

// ByOfficialEmail retrieves a contact by official email, case insensitive
func (r *ContactRepositoryImpl) ByOfficialEmail(ctx context.Context, email string) (*models.Contact, error) {
	db := r.getDB(ctx)
	var row models.Contact
	err := db.Where("LOWER(official_email_id) = LOWER(?)", strings.TrimSpace(email)).Last(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByIDs retrieves contacts for a list of contact IDs, companies preloaded
func (r *ContactRepositoryImpl) ListByIDs(ctx context.Context, ids []int64) ([]*models.Contact, error) {
	db := r.getDB(ctx)
	if len(ids) == 0 {
		return []*models.Contact{}, nil
	}
	var rows []*models.Contact
	if err := db.Preload("Company").Where("contact_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update persists changes to an existing contact
func (r *ContactRepositoryImpl) Update(ctx context.Context, contact *models.Contact) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Save(contact).Error
	return err
}

// Delete removes a contact by ID
func (r *ContactRepositoryImpl) Delete(ctx context.Context, contactID int64) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Delete(&models.Contact{}, contactID).Error
	return err
}

// Summary computes dashboard aggregates over the contact table
func (r *ContactRepositoryImpl) Summary(ctx context.Context) (*models.ContactSummary, error) {
	db := r.getDB(ctx)

	var summary models.ContactSummary
	row := db.Model(&models.Contact{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE official_email_id IS NOT NULL AND official_email_id <> '') AS with_email,
			COUNT(*) FILTER (WHERE mobile_number IS NOT NULL AND mobile_number <> '') AS with_mobile,
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days') AS new_30d`)
	if err := row.Scan(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *ContactRepositoryImpl) applyFilter(query *gorm.DB, filter models.ContactFilter) *gorm.DB {
	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}
	if filter.JobLevel != nil {
		query = query.Where("job_level = ?", *filter.JobLevel)
	}
	if filter.OfficialEmailID != nil {
		query = query.Where("LOWER(official_email_id) = LOWER(?)", *filter.OfficialEmailID)
	}
	if filter.TextSearch != nil {
		pattern := "%" + strings.TrimSpace(*filter.TextSearch) + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR official_email_id ILIKE ? OR designation ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves contacts based on filter criteria
func (r *ContactRepositoryImpl) ByFilter(ctx context.Context, filter models.ContactFilter, orderBy string, limit, offset int) ([]*models.Contact, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Contact{}).Preload("Company")

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "contact_id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Contact
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of contacts matching the filter
func (r *ContactRepositoryImpl) Count(ctx context.Context, filter models.ContactFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Contact{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any contact matching the filter exists
func (r *ContactRepositoryImpl) Exists(ctx context.Context, filter models.ContactFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
