package businessflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/app/services"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"gorm.io/gorm"
)

// AllocationFlow handles allocating saved audience runs into campaign files
type AllocationFlow interface {
	Allocate(ctx context.Context, request *dto.AllocateAudienceRequest, metadata *ClientMetadata) (*dto.AllocateAudienceResponse, error)
	ListFiles(ctx context.Context, campaignID string) (*dto.ListCampaignFilesResponse, error)
	ListAllocations(ctx context.Context, runID string) (*dto.ListAllocationsResponse, error)
}

// AllocationFlowImpl implements the allocation business flow
type AllocationFlowImpl struct {
	queryService services.QueryService
	runRepo      repository.AudienceRunRepository
	campaignRepo repository.CampaignRepository
	fileRepo     repository.CampaignFileRepository
	contactRepo  repository.ContactRepository
	companyRepo  repository.CompanyRepository
	db           *gorm.DB
}

// NewAllocationFlow creates a new allocation flow instance
func NewAllocationFlow(
	queryService services.QueryService,
	runRepo repository.AudienceRunRepository,
	campaignRepo repository.CampaignRepository,
	fileRepo repository.CampaignFileRepository,
	contactRepo repository.ContactRepository,
	companyRepo repository.CompanyRepository,
	db *gorm.DB,
) AllocationFlow {
	return &AllocationFlowImpl{
		queryService: queryService,
		runRepo:      runRepo,
		campaignRepo: campaignRepo,
		fileRepo:     fileRepo,
		contactRepo:  contactRepo,
		companyRepo:  companyRepo,
		db:           db,
	}
}

// Allocate moves up to Limit contacts from a saved run into a fresh campaign
// file. The over-allocation guard runs before any write; the file, its
// contact snapshots, the allocated count and the ledger entry then commit in
// a single transaction or not at all.
func (alf *AllocationFlowImpl) Allocate(ctx context.Context, request *dto.AllocateAudienceRequest, metadata *ClientMetadata) (*dto.AllocateAudienceResponse, error) {
	if strings.TrimSpace(request.FileName) == "" {
		return nil, NewBusinessError("ALLOCATION_VALIDATION_FAILED", "File name is required", ErrFileNameRequired)
	}
	if request.Limit <= 0 {
		return nil, NewBusinessError("ALLOCATION_VALIDATION_FAILED", "Allocation limit must be positive", ErrAllocationLimit)
	}

	runID, err := utils.ParseUUID(request.RunID)
	if err != nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Invalid run ID", errors.Join(ErrRunNotFound, err))
	}
	campaignID, err := utils.ParseUUID(request.CampaignID)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Invalid campaign ID", errors.Join(ErrCampaignNotFound, err))
	}

	run, err := alf.runRepo.ByID(ctx, runID)
	if err != nil {
		return nil, NewBusinessError("RUN_LOOKUP_FAILED", "Failed to load audience run", err)
	}
	if run == nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Audience run not found", ErrRunNotFound)
	}
	if run.Status != models.RunStatusCompleted {
		return nil, NewBusinessError("RUN_NOT_SAVED", "Audience run has no materialized results", ErrRunNotSaved)
	}

	campaign, err := alf.campaignRepo.ByID(ctx, campaignID)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to load campaign", err)
	}
	if campaign == nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	previous, err := alf.fileRepo.ListAllocationsByRun(ctx, runID)
	if err != nil {
		return nil, NewBusinessError("ALLOCATION_LOOKUP_FAILED", "Failed to load allocation history", err)
	}
	var alreadyAllocated int64
	for _, alloc := range previous {
		alreadyAllocated += int64(alloc.AllocatedCount)
	}

	if alreadyAllocated+request.Limit > run.TotalResults {
		return nil, NewBusinessErrorf("OVER_ALLOCATION",
			"Requested %d contacts but only %d of %d remain unallocated", ErrOverAllocation,
			request.Limit, run.TotalResults-alreadyAllocated, run.TotalResults)
	}

	var response *dto.AllocateAudienceResponse
	err = repository.WithTransaction(ctx, alf.db, func(txCtx context.Context) error {
		file := &models.CampaignFile{
			CampaignID:  campaignID,
			FileName:    strings.TrimSpace(request.FileName),
			Description: request.Description,
		}
		if err := alf.fileRepo.Save(txCtx, file); err != nil {
			return errors.Join(ErrAllocationWriteFailed, err)
		}

		rows, err := alf.queryService.GetAudienceResults(txCtx, runID)
		if err != nil {
			return errors.Join(ErrAudienceQueryFailed, err)
		}

		// Allocation is sequential over the frozen result set: skip what
		// earlier files took, then cut the requested slice.
		if alreadyAllocated > int64(len(rows)) {
			rows = nil
		} else {
			rows = rows[alreadyAllocated:]
		}
		if request.Limit < int64(len(rows)) {
			rows = rows[:request.Limit]
		}

		snapshots, err := alf.buildSnapshots(txCtx, file, rows, request.Enrich)
		if err != nil {
			return err
		}

		if err := alf.fileRepo.SaveContactsBatch(txCtx, snapshots); err != nil {
			return errors.Join(ErrAllocationWriteFailed, err)
		}

		allocated := int64(len(snapshots))
		if err := alf.fileRepo.SetAllocatedCount(txCtx, file.ID, allocated); err != nil {
			return errors.Join(ErrAllocationWriteFailed, err)
		}

		ledger := &models.CampaignAudienceAllocation{
			RunID:          runID,
			CampaignID:     campaignID,
			AllocatedCount: int(allocated),
		}
		if err := alf.fileRepo.RecordAllocation(txCtx, ledger); err != nil {
			return errors.Join(ErrAllocationWriteFailed, err)
		}

		response = &dto.AllocateAudienceResponse{
			FileID:    file.ID.String(),
			Allocated: allocated,
		}
		return nil
	})
	if err != nil {
		return nil, NewBusinessError("ALLOCATION_FAILED", "Allocation failed", err)
	}

	return response, nil
}

// buildSnapshots turns result rows into file contact snapshots, optionally
// joined against the contact and company masters for enrichment columns.
// Enrichment misses are tolerated; the base snapshot still lands.
func (alf *AllocationFlowImpl) buildSnapshots(ctx context.Context, file *models.CampaignFile, rows []models.AudienceResultRow, enrich bool) ([]*models.CampaignFileContact, error) {
	var contactsByID map[int64]*models.Contact
	var companiesByID map[int64]*models.Company

	if enrich {
		contactIDs := make([]int64, 0, len(rows))
		companyIDs := make([]int64, 0, len(rows))
		for _, row := range rows {
			contactIDs = append(contactIDs, row.ContactID)
			if row.CompanyID != nil {
				companyIDs = append(companyIDs, *row.CompanyID)
			}
		}

		contacts, err := alf.contactRepo.ListByIDs(ctx, contactIDs)
		if err != nil {
			return nil, errors.Join(ErrAllocationWriteFailed, err)
		}
		contactsByID = make(map[int64]*models.Contact, len(contacts))
		for _, c := range contacts {
			contactsByID[c.ContactID] = c
		}

		companies, err := alf.companyRepo.ListByIDs(ctx, companyIDs)
		if err != nil {
			return nil, errors.Join(ErrAllocationWriteFailed, err)
		}
		companiesByID = make(map[int64]*models.Company, len(companies))
		for _, c := range companies {
			companiesByID[c.CompanyID] = c
		}
	}

	snapshots := make([]*models.CampaignFileContact, 0, len(rows))
	for _, row := range rows {
		snapshot := &models.CampaignFileContact{
			CampaignFileID: file.ID,
			ContactID:      row.ContactID,
			CompanyID:      row.CompanyID,
			FirstName:      utils.TrimToNil(row.FirstName),
			LastName:       utils.TrimToNil(row.LastName),
			Email:          utils.TrimToNil(row.Email),
			Phone:          utils.TrimToNil(row.Phone),
			CompanyName:    utils.TrimToNil(row.CompanyName),
			City:           utils.TrimToNil(row.City),
			State:          utils.TrimToNil(row.State),
			Industry:       utils.TrimToNil(row.Industry),
			JobLevel:       utils.TrimToNil(row.JobLevel),
			Department:     utils.TrimToNil(row.Department),
		}

		if enrich {
			if contact, ok := contactsByID[row.ContactID]; ok {
				snapshot.Designation = contact.Designation
			}
			if row.CompanyID != nil {
				if company, ok := companiesByID[*row.CompanyID]; ok {
					snapshot.Website = company.Website
					snapshot.TurnoverINRCr = company.TurnoverINRCr
					snapshot.PostalAddress = joinPostalAddress(company)
				}
			}
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

func joinPostalAddress(company *models.Company) *string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{company.PostalAddress1, company.PostalAddress2, company.PostalAddress3} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

// ListFiles returns the files of a campaign newest first
func (alf *AllocationFlowImpl) ListFiles(ctx context.Context, campaignID string) (*dto.ListCampaignFilesResponse, error) {
	id, err := utils.ParseUUID(campaignID)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Invalid campaign ID", errors.Join(ErrCampaignNotFound, err))
	}

	files, err := alf.fileRepo.ListByCampaign(ctx, id)
	if err != nil {
		return nil, NewBusinessError("FILE_LIST_FAILED", "Failed to list campaign files", err)
	}

	out := make([]dto.CampaignFileDTO, 0, len(files))
	for _, file := range files {
		out = append(out, dto.CampaignFileDTO{
			ID:                file.ID.String(),
			CampaignID:        file.CampaignID.String(),
			FileName:          file.FileName,
			Description:       file.Description,
			TotalContacts:     int64(file.TotalContacts),
			AllocatedContacts: int64(file.AllocatedContacts),
			CreatedAt:         file.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.ListCampaignFilesResponse{Files: out}, nil
}

// ListAllocations returns the allocation ledger of a run
func (alf *AllocationFlowImpl) ListAllocations(ctx context.Context, runID string) (*dto.ListAllocationsResponse, error) {
	id, err := utils.ParseUUID(runID)
	if err != nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Invalid run ID", errors.Join(ErrRunNotFound, err))
	}

	allocations, err := alf.fileRepo.ListAllocationsByRun(ctx, id)
	if err != nil {
		return nil, NewBusinessError("ALLOCATION_LOOKUP_FAILED", "Failed to load allocation history", err)
	}

	out := make([]dto.AllocationDTO, 0, len(allocations))
	var total int64
	for _, alloc := range allocations {
		total += int64(alloc.AllocatedCount)
		out = append(out, dto.AllocationDTO{
			ID:             utils.FormatInt64(alloc.ID),
			RunID:          alloc.RunID.String(),
			CampaignID:     alloc.CampaignID.String(),
			AllocatedCount: int64(alloc.AllocatedCount),
			CreatedAt:      alloc.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.ListAllocationsResponse{
		Allocations:    out,
		TotalAllocated: total,
	}, nil
}
