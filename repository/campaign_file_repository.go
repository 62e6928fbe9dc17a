package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/models"
	"gorm.io/gorm"
)

// CampaignFileRepositoryImpl implements CampaignFileRepository interface
type CampaignFileRepositoryImpl struct {
	*BaseRepository[models.CampaignFile, struct{}]
}

// NewCampaignFileRepository creates a new campaign file repository
func NewCampaignFileRepository(db *gorm.DB) CampaignFileRepository {
	return &CampaignFileRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CampaignFile, struct{}](db),
	}
}

// ByID retrieves a campaign file by its UUID
func (r *CampaignFileRepositoryImpl) ByID(ctx context.Context, id uuid.UUID) (*models.CampaignFile, error) {
	db := r.getDB(ctx)
	var row models.CampaignFile
	if err := db.Where("id = ?", id).Last(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByCampaign retrieves all files of a campaign newest first
func (r *CampaignFileRepositoryImpl) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.CampaignFile, error) {
	db := r.getDB(ctx)
	var rows []*models.CampaignFile
	err := db.Where("campaign_id = ?", campaignID).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveContactsBatch inserts snapshot rows for a campaign file
func (r *CampaignFileRepositoryImpl) SaveContactsBatch(ctx context.Context, contacts []*models.CampaignFileContact) error {
	if len(contacts) == 0 {
		return nil
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

	err = db.CreateInBatches(contacts, 100).Error
	return err
}

// SetAllocatedCount overwrites the allocated contact count of a file
func (r *CampaignFileRepositoryImpl) SetAllocatedCount(ctx context.Context, fileID uuid.UUID, allocated int64) error {
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

	res := db.Model(&models.CampaignFile{}).Where("id = ?", fileID).
		Update("allocated_contacts", allocated)
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

// RecordAllocation appends an allocation ledger entry
func (r *CampaignFileRepositoryImpl) RecordAllocation(ctx context.Context, allocation *models.CampaignAudienceAllocation) error {
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

	err = db.Create(allocation).Error
	return err
}

// ListAllocationsByRun retrieves the allocation ledger of an audience run
func (r *CampaignFileRepositoryImpl) ListAllocationsByRun(ctx context.Context, runID uuid.UUID) ([]*models.CampaignAudienceAllocation, error) {
	db := r.getDB(ctx)
	var rows []*models.CampaignAudienceAllocation
	err := db.Where("run_id = ?", runID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
