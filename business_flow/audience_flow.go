package businessflow

import (
	"context"
	"errors"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/app/services"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"gorm.io/gorm"
)

// AudienceFlow handles audience search, preview, build and run management
type AudienceFlow interface {
	Search(ctx context.Context, request *dto.SearchAudienceRequest, metadata *ClientMetadata) (*dto.SearchAudienceResponse, error)
	Preview(ctx context.Context, request *dto.PreviewAudienceRequest, metadata *ClientMetadata) (*dto.PreviewAudienceResponse, error)
	Build(ctx context.Context, request *dto.BuildAudienceRequest, metadata *ClientMetadata) (*dto.BuildAudienceResponse, error)
	ListRuns(ctx context.Context, limit, offset int) (*dto.ListAudienceRunsResponse, error)
	GetRun(ctx context.Context, runID string) (*dto.AudienceRunDTO, error)
	UpdateRun(ctx context.Context, request *dto.UpdateAudienceRunRequest, metadata *ClientMetadata) (*dto.UpdateAudienceRunResponse, error)
	DeleteRun(ctx context.Context, runID string) error
	GetRunResults(ctx context.Context, runID string) (*dto.GetAudienceResultsResponse, error)
}

// AudienceFlowImpl implements the audience business flow
type AudienceFlowImpl struct {
	queryService services.QueryService
	runRepo      repository.AudienceRunRepository
	db           *gorm.DB
}

// NewAudienceFlow creates a new audience flow instance
func NewAudienceFlow(
	queryService services.QueryService,
	runRepo repository.AudienceRunRepository,
	db *gorm.DB,
) AudienceFlow {
	return &AudienceFlowImpl{
		queryService: queryService,
		runRepo:      runRepo,
		db:           db,
	}
}

// normalizePage clamps a page number to a minimum of 1
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// normalizePageSize applies the default and clamps to the allowed window
func normalizePageSize(pageSize int) int {
	if pageSize == 0 {
		return utils.PreviewDefaultPageSize
	}
	if pageSize < utils.PreviewMinPageSize {
		return utils.PreviewMinPageSize
	}
	if pageSize > utils.PreviewMaxPageSize {
		return utils.PreviewMaxPageSize
	}
	return pageSize
}

// Search runs a paginated audience search with normalized filters
func (af *AudienceFlowImpl) Search(ctx context.Context, request *dto.SearchAudienceRequest, metadata *ClientMetadata) (*dto.SearchAudienceResponse, error) {
	page := normalizePage(request.Page)
	pageSize := normalizePageSize(request.PageSize)
	filters := request.Filters.ToFilterSet().Normalized()

	rows, total, err := af.queryService.SearchAudience(ctx, filters, page, pageSize)
	if err != nil {
		return nil, NewBusinessError("AUDIENCE_SEARCH_FAILED", "Audience search failed", errors.Join(ErrAudienceQueryFailed, err))
	}

	return &dto.SearchAudienceResponse{
		Rows:     ToAudienceRowDTOs(rows),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Preview returns a window of results without persisting anything. The
// client's seq token is echoed back untouched so stale responses can be
// discarded on arrival.
func (af *AudienceFlowImpl) Preview(ctx context.Context, request *dto.PreviewAudienceRequest, metadata *ClientMetadata) (*dto.PreviewAudienceResponse, error) {
	page := normalizePage(request.Page)
	pageSize := normalizePageSize(request.PageSize)
	offset := (page - 1) * pageSize
	filters := request.Filters.ToFilterSet().Normalized()

	rows, total, err := af.queryService.PreviewAudience(ctx, filters, pageSize, offset)
	if err != nil {
		return nil, NewBusinessError("AUDIENCE_PREVIEW_FAILED", "Audience preview failed", errors.Join(ErrAudienceQueryFailed, err))
	}

	return &dto.PreviewAudienceResponse{
		Rows:     ToAudienceRowDTOs(rows),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Seq:      request.Seq,
	}, nil
}

// Build materializes the audience. With save set, the run row persists and
// any provided name or notes are patched onto it afterwards; a metadata
// patch failure does not roll back the saved run.
func (af *AudienceFlowImpl) Build(ctx context.Context, request *dto.BuildAudienceRequest, metadata *ClientMetadata) (*dto.BuildAudienceResponse, error) {
	filters := request.Filters.ToFilterSet().Normalized()

	runID, err := af.queryService.BuildAudience(ctx, filters, request.Save)
	if err != nil {
		return nil, NewBusinessError("AUDIENCE_BUILD_FAILED", "Audience build failed", errors.Join(ErrAudienceBuildFailed, err))
	}

	if !request.Save {
		// Unsaved builds have no run row; report the match count only.
		_, total, err := af.queryService.SearchAudience(ctx, filters, 1, utils.PreviewMinPageSize)
		if err != nil {
			return nil, NewBusinessError("AUDIENCE_BUILD_FAILED", "Audience build count failed", errors.Join(ErrAudienceBuildFailed, err))
		}
		return &dto.BuildAudienceResponse{
			TotalResults: total,
			Saved:        false,
		}, nil
	}

	run, err := af.runRepo.ByID(ctx, runID)
	if err != nil {
		return nil, NewBusinessError("AUDIENCE_BUILD_FAILED", "Failed to load saved run", err)
	}
	if run == nil {
		return nil, NewBusinessError("AUDIENCE_BUILD_FAILED", "Saved run not found after build", ErrRunNotFound)
	}

	if request.Name != nil || request.Notes != nil {
		if err := af.runRepo.UpdateMetadata(ctx, runID, request.Name, request.Notes); err != nil {
			// The run itself is committed at this point.
			runIDStr := runID.String()
			return &dto.BuildAudienceResponse{
					RunID:        &runIDStr,
					TotalResults: run.TotalResults,
					Saved:        true,
				}, NewBusinessError("RUN_METADATA_SAVE_FAILED", "Run saved but metadata update failed",
					errors.Join(ErrRunMetadataSaveFailed, err))
		}
	}

	runIDStr := runID.String()
	return &dto.BuildAudienceResponse{
		RunID:        &runIDStr,
		TotalResults: run.TotalResults,
		Saved:        true,
	}, nil
}

// ListRuns returns saved runs newest first
func (af *AudienceFlowImpl) ListRuns(ctx context.Context, limit, offset int) (*dto.ListAudienceRunsResponse, error) {
	filter := models.AudienceRunFilter{}

	runs, err := af.runRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, NewBusinessError("RUN_LIST_FAILED", "Failed to list audience runs", err)
	}

	total, err := af.runRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("RUN_LIST_FAILED", "Failed to count audience runs", err)
	}

	out := make([]dto.AudienceRunDTO, 0, len(runs))
	for _, run := range runs {
		out = append(out, ToAudienceRunDTO(*run))
	}

	return &dto.ListAudienceRunsResponse{
		Runs:  out,
		Total: total,
	}, nil
}

// GetRun returns a single saved run
func (af *AudienceFlowImpl) GetRun(ctx context.Context, runID string) (*dto.AudienceRunDTO, error) {
	id, err := utils.ParseUUID(runID)
	if err != nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Invalid run ID", errors.Join(ErrRunNotFound, err))
	}

	run, err := af.runRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("RUN_LOOKUP_FAILED", "Failed to load audience run", err)
	}
	if run == nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Audience run not found", ErrRunNotFound)
	}

	out := ToAudienceRunDTO(*run)
	return &out, nil
}

// UpdateRun patches the name and notes of a saved run. Filters and result
// counts are frozen at build time and cannot change here.
func (af *AudienceFlowImpl) UpdateRun(ctx context.Context, request *dto.UpdateAudienceRunRequest, metadata *ClientMetadata) (*dto.UpdateAudienceRunResponse, error) {
	if request.Name == nil && request.Notes == nil {
		return nil, NewBusinessError("RUN_UPDATE_EMPTY", "No fields to update", ErrRunUpdateFieldsRequired)
	}

	id, err := utils.ParseUUID(request.RunID)
	if err != nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Invalid run ID", errors.Join(ErrRunNotFound, err))
	}

	if err := af.runRepo.UpdateMetadata(ctx, id, request.Name, request.Notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError("RUN_NOT_FOUND", "Audience run not found", ErrRunNotFound)
		}
		return nil, NewBusinessError("RUN_METADATA_SAVE_FAILED", "Failed to update run metadata", errors.Join(ErrRunMetadataSaveFailed, err))
	}

	run, err := af.runRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("RUN_LOOKUP_FAILED", "Failed to load audience run", err)
	}
	if run == nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Audience run not found", ErrRunNotFound)
	}

	return &dto.UpdateAudienceRunResponse{Run: ToAudienceRunDTO(*run)}, nil
}

// DeleteRun removes a saved run
func (af *AudienceFlowImpl) DeleteRun(ctx context.Context, runID string) error {
	id, err := utils.ParseUUID(runID)
	if err != nil {
		return NewBusinessError("RUN_NOT_FOUND", "Invalid run ID", errors.Join(ErrRunNotFound, err))
	}

	run, err := af.runRepo.ByID(ctx, id)
	if err != nil {
		return NewBusinessError("RUN_LOOKUP_FAILED", "Failed to load audience run", err)
	}
	if run == nil {
		return NewBusinessError("RUN_NOT_FOUND", "Audience run not found", ErrRunNotFound)
	}

	if err := af.runRepo.Delete(ctx, id); err != nil {
		return NewBusinessError("RUN_DELETE_FAILED", "Failed to delete audience run", err)
	}
	return nil
}

// GetRunResults returns the frozen result set of a saved run
func (af *AudienceFlowImpl) GetRunResults(ctx context.Context, runID string) (*dto.GetAudienceResultsResponse, error) {
	id, err := utils.ParseUUID(runID)
	if err != nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Invalid run ID", errors.Join(ErrRunNotFound, err))
	}

	run, err := af.runRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("RUN_LOOKUP_FAILED", "Failed to load audience run", err)
	}
	if run == nil {
		return nil, NewBusinessError("RUN_NOT_FOUND", "Audience run not found", ErrRunNotFound)
	}

	rows, err := af.queryService.GetAudienceResults(ctx, id)
	if err != nil {
		return nil, NewBusinessError("RUN_RESULTS_FAILED", "Failed to load run results", errors.Join(ErrAudienceQueryFailed, err))
	}

	return &dto.GetAudienceResultsResponse{
		RunID: id.String(),
		Rows:  ToAudienceRowDTOs(rows),
		Total: run.TotalResults,
	}, nil
}
