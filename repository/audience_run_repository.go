package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// AudienceRunRepositoryImpl implements AudienceRunRepository interface
type AudienceRunRepositoryImpl struct {
	*BaseRepository[models.AudienceRun, models.AudienceRunFilter]
}

// NewAudienceRunRepository creates a new audience run repository
func NewAudienceRunRepository(db *gorm.DB) AudienceRunRepository {
	return &AudienceRunRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AudienceRun, models.AudienceRunFilter](db),
	}
}

// ByID retrieves an audience run by its UUID
func (r *AudienceRunRepositoryImpl) ByID(ctx context.Context, id uuid.UUID) (*models.AudienceRun, error) {
	db := r.getDB(ctx)
	var row models.AudienceRun
	if err := db.Where("id = ?", id).Last(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *AudienceRunRepositoryImpl) applyFilter(query *gorm.DB, filter models.AudienceRunFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// List retrieves audience runs newest first
func (r *AudienceRunRepositoryImpl) List(ctx context.Context, filter models.AudienceRunFilter, limit, offset int) ([]*models.AudienceRun, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.AudienceRun{})

	query = r.applyFilter(query, filter)
	query = query.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.AudienceRun
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of audience runs matching the filter
func (r *AudienceRunRepositoryImpl) Count(ctx context.Context, filter models.AudienceRunFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.AudienceRun{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateMetadata patches the name and notes of a saved run. Filters and
// result counts are never touched after the run is created.
func (r *AudienceRunRepositoryImpl) UpdateMetadata(ctx context.Context, id uuid.UUID, name, notes *string) error {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if name != nil {
		updates["name"] = *name
	}
	if notes != nil {
		updates["notes"] = *notes
	}

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

	res := db.Model(&models.AudienceRun{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		err = res.Error
		return err
	}
	if res.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
		return err
	}
	return nil
}

// DeleteStaleDrafts removes draft runs created before the cutoff and returns
// the number of rows removed.
func (r *AudienceRunRepositoryImpl) DeleteStaleDrafts(ctx context.Context, before time.Time) (int64, error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return 0, err
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

	res := db.Where("status = ? AND created_at < ?", models.RunStatusDraft, before).Delete(&models.AudienceRun{})
	if res.Error != nil {
		err = res.Error
		return 0, err
	}
	return res.RowsAffected, nil
}

// Delete removes an audience run by UUID
func (r *AudienceRunRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
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

	err = db.Where("id = ?", id).Delete(&models.AudienceRun{}).Error
	return err
}
