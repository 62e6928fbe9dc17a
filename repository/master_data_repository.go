package repository

import (
	"context"

	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// MasterDataRepositoryImpl implements MasterDataRepository over the six master tables
type MasterDataRepositoryImpl struct {
	db *gorm.DB
}

// NewMasterDataRepository creates a new master data repository
func NewMasterDataRepository(db *gorm.DB) MasterDataRepository {
	return &MasterDataRepositoryImpl{db: db}
}

func (r *MasterDataRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// ListCities retrieves all cities ordered by name
func (r *MasterDataRepositoryImpl) ListCities(ctx context.Context) ([]*models.City, error) {
	var rows []*models.City
	if err := r.getDB(ctx).Order("city ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListIndustries retrieves all industries ordered by vertical
func (r *MasterDataRepositoryImpl) ListIndustries(ctx context.Context) ([]*models.Industry, error) {
	var rows []*models.Industry
	if err := r.getDB(ctx).Order("industry_vertical ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListDepartments retrieves all departments ordered by name
func (r *MasterDataRepositoryImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	var rows []*models.Department
	if err := r.getDB(ctx).Order("department_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListJobLevels retrieves all job levels ordered by name
func (r *MasterDataRepositoryImpl) ListJobLevels(ctx context.Context) ([]*models.JobLevel, error) {
	var rows []*models.JobLevel
	if err := r.getDB(ctx).Order("job_level_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListEmployeeRanges retrieves all employee ranges in insertion order
func (r *MasterDataRepositoryImpl) ListEmployeeRanges(ctx context.Context) ([]*models.EmployeeRange, error) {
	var rows []*models.EmployeeRange
	if err := r.getDB(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTurnoverRanges retrieves all turnover ranges in insertion order
func (r *MasterDataRepositoryImpl) ListTurnoverRanges(ctx context.Context) ([]*models.TurnoverRange, error) {
	var rows []*models.TurnoverRange
	if err := r.getDB(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveCity inserts a new city
func (r *MasterDataRepositoryImpl) SaveCity(ctx context.Context, city *models.City) error {
	return r.getDB(ctx).Create(city).Error
}

// SaveIndustry inserts a new industry
func (r *MasterDataRepositoryImpl) SaveIndustry(ctx context.Context, industry *models.Industry) error {
	return r.getDB(ctx).Create(industry).Error
}

// SaveDepartment inserts a new department
func (r *MasterDataRepositoryImpl) SaveDepartment(ctx context.Context, department *models.Department) error {
	return r.getDB(ctx).Create(department).Error
}

// SaveJobLevel inserts a new job level
func (r *MasterDataRepositoryImpl) SaveJobLevel(ctx context.Context, level *models.JobLevel) error {
	return r.getDB(ctx).Create(level).Error
}

// SaveEmployeeRange inserts a new employee range
func (r *MasterDataRepositoryImpl) SaveEmployeeRange(ctx context.Context, rng *models.EmployeeRange) error {
	return r.getDB(ctx).Create(rng).Error
}

// SaveTurnoverRange inserts a new turnover range
func (r *MasterDataRepositoryImpl) SaveTurnoverRange(ctx context.Context, rng *models.TurnoverRange) error {
	return r.getDB(ctx).Create(rng).Error
}

func (r *MasterDataRepositoryImpl) deleteByID(ctx context.Context, model any, id int64) error {
	result := r.getDB(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCity removes a city master row
func (r *MasterDataRepositoryImpl) DeleteCity(ctx context.Context, cityID int64) error {
	return r.deleteByID(ctx, &models.City{}, cityID)
}

// DeleteIndustry removes an industry master row
func (r *MasterDataRepositoryImpl) DeleteIndustry(ctx context.Context, industryID int64) error {
	return r.deleteByID(ctx, &models.Industry{}, industryID)
}

// DeleteDepartment removes a department master row
func (r *MasterDataRepositoryImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.Department{}, id)
}

// DeleteJobLevel removes a job level master row
func (r *MasterDataRepositoryImpl) DeleteJobLevel(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.JobLevel{}, id)
}

// DeleteEmployeeRange removes an employee range master row
func (r *MasterDataRepositoryImpl) DeleteEmployeeRange(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.EmployeeRange{}, id)
}

// DeleteTurnoverRange removes a turnover range master row
func (r *MasterDataRepositoryImpl) DeleteTurnoverRange(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.TurnoverRange{}, id)
}
