package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// CampaignRepositoryImpl implements CampaignRepository interface
type CampaignRepositoryImpl struct {
	*BaseRepository[models.Campaign, models.CampaignFilter]
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Campaign, models.CampaignFilter](db),
	}
}

// ByID retrieves a campaign by its UUID
func (r *CampaignRepositoryImpl) ByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	db := r.getDB(ctx)
	var row models.Campaign
	if err := db.Where("id = ?", id).Last(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *CampaignRepositoryImpl) applyFilter(query *gorm.DB, filter models.CampaignFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.ClientName != nil {
		query = query.Where("client_name = ?", *filter.ClientName)
	}
	if filter.ActiveOn != nil {
		query = query.Where("start_date <= ? AND end_date >= ?", *filter.ActiveOn, *filter.ActiveOn)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves campaigns based on filter criteria
func (r *CampaignRepositoryImpl) ByFilter(ctx context.Context, filter models.CampaignFilter, orderBy string, limit, offset int) ([]*models.Campaign, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Campaign{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Campaign
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of campaigns matching the filter
func (r *CampaignRepositoryImpl) Count(ctx context.Context, filter models.CampaignFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Campaign{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveOn returns the number of campaigns whose date window covers the given day
func (r *CampaignRepositoryImpl) CountActiveOn(ctx context.Context, day time.Time) (int64, error) {
	return r.Count(ctx, models.CampaignFilter{ActiveOn: &day})
}

// Update persists changes to an existing campaign
func (r *CampaignRepositoryImpl) Update(ctx context.Context, campaign *models.Campaign) error {
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

	err = db.Save(campaign).Error
	return err
}

// Delete removes a campaign by UUID
func (r *CampaignRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
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

	err = db.Where("id = ?", id).Delete(&models.Campaign{}).Error
	return err
}
