package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// CompanyRepositoryImpl implements CompanyRepository interface
type CompanyRepositoryImpl struct {
	*BaseRepository[models.Company, models.CompanyFilter]
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Company, models.CompanyFilter](db),
	}
}

// ByName retrieves a company by exact name, case insensitive
func (r *CompanyRepositoryImpl) ByName(ctx context.Context, name string) (*models.Company, error) {
	db := r.getDB(ctx)
	var row models.Company
	err := db.Where("LOWER(company_name) = LOWER(?)", strings.TrimSpace(name)).Last(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByIDs retrieves companies for a list of company IDs
func (r *CompanyRepositoryImpl) ListByIDs(ctx context.Context, ids []int64) ([]*models.Company, error) {
	db := r.getDB(ctx)
	if len(ids) == 0 {
		return []*models.Company{}, nil
	}
	var rows []*models.Company
	if err := db.Where("company_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update persists changes to an existing company
func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *models.Company) error {
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

	err = db.Save(company).Error
	return err
}

// Delete removes a company by ID
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, companyID int64) error {
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

	err = db.Delete(&models.Company{}, companyID).Error
	return err
}

// applyFilter applies filter criteria to a GORM query
func (r *CompanyRepositoryImpl) applyFilter(query *gorm.DB, filter models.CompanyFilter) *gorm.DB {
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.CompanyName != nil {
		query = query.Where("LOWER(company_name) = LOWER(?)", *filter.CompanyName)
	}
	if filter.Industry != nil {
		query = query.Where("industry = ?", *filter.Industry)
	}
	if filter.EmployeeMin != nil {
		query = query.Where("no_of_employees_total >= ?", *filter.EmployeeMin)
	}
	if filter.EmployeeMax != nil {
		query = query.Where("no_of_employees_total <= ?", *filter.EmployeeMax)
	}
	if filter.TextSearch != nil {
		pattern := "%" + strings.TrimSpace(*filter.TextSearch) + "%"
		query = query.Where("company_name ILIKE ? OR industry ILIKE ? OR website ILIKE ?", pattern, pattern, pattern)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves companies based on filter criteria
func (r *CompanyRepositoryImpl) ByFilter(ctx context.Context, filter models.CompanyFilter, orderBy string, limit, offset int) ([]*models.Company, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Company{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "company_id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Company
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of companies matching the filter
func (r *CompanyRepositoryImpl) Count(ctx context.Context, filter models.CompanyFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Company{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any company matching the filter exists
func (r *CompanyRepositoryImpl) Exists(ctx context.Context, filter models.CompanyFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
