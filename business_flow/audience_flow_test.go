package businessflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueryService records the parameters of the last call to each procedure
// and returns canned results.
type fakeQueryService struct {
	searchFilters  map[string]any
	searchPage     int
	searchPageSize int
	searchRows     []models.AudienceResultRow
	searchTotal    int64
	searchErr      error

	previewFilters map[string]any
	previewLimit   int
	previewOffset  int
	previewRows    []models.AudienceResultRow
	previewTotal   int64
	previewErr     error

	buildFilters map[string]any
	buildSave    bool
	buildRunID   uuid.UUID
	buildErr     error

	resultRows []models.AudienceResultRow
	resultsErr error

	summary    *models.ContactSummary
	summaryErr error
}

func (f *fakeQueryService) SearchAudience(ctx context.Context, filters map[string]any, page, pageSize int) ([]models.AudienceResultRow, int64, error) {
	f.searchFilters = filters
	f.searchPage = page
	f.searchPageSize = pageSize
	return f.searchRows, f.searchTotal, f.searchErr
}

func (f *fakeQueryService) BuildAudience(ctx context.Context, filters map[string]any, save bool) (uuid.UUID, error) {
	f.buildFilters = filters
	f.buildSave = save
	return f.buildRunID, f.buildErr
}

func (f *fakeQueryService) PreviewAudience(ctx context.Context, filters map[string]any, limit, offset int) ([]models.AudienceResultRow, int64, error) {
	f.previewFilters = filters
	f.previewLimit = limit
	f.previewOffset = offset
	return f.previewRows, f.previewTotal, f.previewErr
}

func (f *fakeQueryService) GetAudienceResults(ctx context.Context, runID uuid.UUID) ([]models.AudienceResultRow, error) {
	return f.resultRows, f.resultsErr
}

func (f *fakeQueryService) GetContactSummary(ctx context.Context) (*models.ContactSummary, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &models.ContactSummary{}, nil
}

// fakeRunRepo is an in-memory AudienceRunRepository
type fakeRunRepo struct {
	runs              map[uuid.UUID]*models.AudienceRun
	updateMetadataErr error
	metadataCalls     int
	deleted           []uuid.UUID
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[uuid.UUID]*models.AudienceRun)}
}

func (f *fakeRunRepo) ByID(ctx context.Context, id uuid.UUID) (*models.AudienceRun, error) {
	return f.runs[id], nil
}

func (f *fakeRunRepo) List(ctx context.Context, filter models.AudienceRunFilter, limit, offset int) ([]*models.AudienceRun, error) {
	out := make([]*models.AudienceRun, 0, len(f.runs))
	for _, run := range f.runs {
		out = append(out, run)
	}
	return out, nil
}

func (f *fakeRunRepo) Save(ctx context.Context, run *models.AudienceRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	f.runs[run.ID] = run
	return nil
}

func (f *fakeRunRepo) Count(ctx context.Context, filter models.AudienceRunFilter) (int64, error) {
	return int64(len(f.runs)), nil
}

func (f *fakeRunRepo) UpdateMetadata(ctx context.Context, id uuid.UUID, name, notes *string) error {
	f.metadataCalls++
	if f.updateMetadataErr != nil {
		return f.updateMetadataErr
	}
	run, ok := f.runs[id]
	if !ok {
		return errors.New("run not found")
	}
	if name != nil {
		run.Name = name
	}
	if notes != nil {
		run.Notes = notes
	}
	return nil
}

func (f *fakeRunRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.runs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRunRepo) DeleteStaleDrafts(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func testMetadata() *ClientMetadata {
	return NewClientMetadata("127.0.0.1", "test-agent")
}

func TestSearchNormalizesPagination(t *testing.T) {
	qs := &fakeQueryService{searchTotal: 42}
	flow := NewAudienceFlow(qs, newFakeRunRepo(), nil)

	resp, err := flow.Search(context.Background(), &dto.SearchAudienceRequest{
		Page:     0,
		PageSize: 0,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, utils.PreviewDefaultPageSize, resp.PageSize)
	assert.Equal(t, 1, qs.searchPage)
	assert.Equal(t, utils.PreviewDefaultPageSize, qs.searchPageSize)
	assert.Equal(t, int64(42), resp.Total)
}

func TestSearchClampsPageSizeToWindow(t *testing.T) {
	qs := &fakeQueryService{}
	flow := NewAudienceFlow(qs, newFakeRunRepo(), nil)

	_, err := flow.Search(context.Background(), &dto.SearchAudienceRequest{Page: 1, PageSize: 5}, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, utils.PreviewMinPageSize, qs.searchPageSize)

	_, err = flow.Search(context.Background(), &dto.SearchAudienceRequest{Page: 1, PageSize: 1000}, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, utils.PreviewMaxPageSize, qs.searchPageSize)
}

func TestSearchSendsNormalizedFilters(t *testing.T) {
	qs := &fakeQueryService{}
	flow := NewAudienceFlow(qs, newFakeRunRepo(), nil)

	_, err := flow.Search(context.Background(), &dto.SearchAudienceRequest{
		Filters: dto.AudienceFilterRequest{
			Industry: "Manufacturing",
			CityID:   "",
			HasEmail: false,
			HasPhone: true,
		},
		Page:     1,
		PageSize: 20,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"industry":  "Manufacturing",
		"has_phone": true,
	}, qs.searchFilters)
}

func TestSearchWrapsQueryFailure(t *testing.T) {
	qs := &fakeQueryService{searchErr: errors.New("procedure missing")}
	flow := NewAudienceFlow(qs, newFakeRunRepo(), nil)

	_, err := flow.Search(context.Background(), &dto.SearchAudienceRequest{}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAudienceQueryFailed)

	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "AUDIENCE_SEARCH_FAILED", bizErr.Code)
}

func TestPreviewEchoesSeqAndComputesOffset(t *testing.T) {
	qs := &fakeQueryService{previewTotal: 100}
	flow := NewAudienceFlow(qs, newFakeRunRepo(), nil)

	resp, err := flow.Preview(context.Background(), &dto.PreviewAudienceRequest{
		Page:     3,
		PageSize: 20,
		Seq:      17,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, int64(17), resp.Seq)
	assert.Equal(t, 20, qs.previewLimit)
	assert.Equal(t, 40, qs.previewOffset)
}

func TestBuildUnsavedReportsCountOnly(t *testing.T) {
	qs := &fakeQueryService{buildRunID: uuid.Nil, searchTotal: 321}
	flow := NewAudienceFlow(qs, newFakeRunRepo(), nil)

	resp, err := flow.Build(context.Background(), &dto.BuildAudienceRequest{Save: false}, testMetadata())
	require.NoError(t, err)

	assert.False(t, resp.Saved)
	assert.Nil(t, resp.RunID)
	assert.Equal(t, int64(321), resp.TotalResults)
	assert.False(t, qs.buildSave)
}

func TestBuildSavedPatchesMetadata(t *testing.T) {
	runID := uuid.New()
	repo := newFakeRunRepo()
	repo.runs[runID] = &models.AudienceRun{
		ID:           runID,
		Status:       models.RunStatusCompleted,
		TotalResults: 1543,
		Filters:      models.FilterSnapshot{"industry": "Manufacturing"},
	}
	qs := &fakeQueryService{buildRunID: runID}
	flow := NewAudienceFlow(qs, repo, nil)

	name := "Q3 BFSI CXOs"
	resp, err := flow.Build(context.Background(), &dto.BuildAudienceRequest{
		Save: true,
		Name: &name,
	}, testMetadata())
	require.NoError(t, err)

	assert.True(t, resp.Saved)
	require.NotNil(t, resp.RunID)
	assert.Equal(t, runID.String(), *resp.RunID)
	assert.Equal(t, int64(1543), resp.TotalResults)
	require.NotNil(t, repo.runs[runID].Name)
	assert.Equal(t, name, *repo.runs[runID].Name)
}

func TestBuildSavedSurvivesMetadatafailure(t *testing.T) {
	runID := uuid.New()
	repo := newFakeRunRepo()
	repo.runs[runID] = &models.AudienceRun{
		ID:           runID,
		Status:       models.RunStatusCompleted,
		TotalResults: 1543,
	}
	repo.updateMetadataErr = errors.New("connection reset")
	qs := &fakeQueryService{buildRunID: runID}
	flow := NewAudienceFlow(qs, repo, nil)

	name := "Q3 BFSI CXOs"
	resp, err := flow.Build(context.Background(), &dto.BuildAudienceRequest{
		Save: true,
		Name: &name,
	}, testMetadata())

	// The run itself committed; the caller gets the run ID alongside the error.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunMetadataSaveFailed)
	require.NotNil(t, resp)
	require.NotNil(t, resp.RunID)
	assert.Equal(t, runID.String(), *resp.RunID)
	assert.True(t, resp.Saved)
}

func TestBuildWithoutMetadataSkipsPatch(t *testing.T) {
	runID := uuid.New()
	repo := newFakeRunRepo()
	repo.runs[runID] = &models.AudienceRun{ID: runID, Status: models.RunStatusCompleted}
	qs := &fakeQueryService{buildRunID: runID}
	flow := NewAudienceFlow(qs, repo, nil)

	_, err := flow.Build(context.Background(), &dto.BuildAudienceRequest{Save: true}, testMetadata())
	require.NoError(t, err)
	assert.Zero(t, repo.metadataCalls)
}

func TestUpdateRunRequiresAField(t *testing.T) {
	flow := NewAudienceFlow(&fakeQueryService{}, newFakeRunRepo(), nil)

	_, err := flow.UpdateRun(context.Background(), &dto.UpdateAudienceRunRequest{
		RunID: uuid.New().String(),
	}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunUpdateFieldsRequired)
}

func TestUpdateRunLeavesFiltersFrozen(t *testing.T) {
	runID := uuid.New()
	repo := newFakeRunRepo()
	frozen := models.FilterSnapshot{"industry": "Manufacturing"}
	repo.runs[runID] = &models.AudienceRun{
		ID:      runID,
		Status:  models.RunStatusCompleted,
		Filters: frozen,
	}
	flow := NewAudienceFlow(&fakeQueryService{}, repo, nil)

	name := "renamed"
	resp, err := flow.UpdateRun(context.Background(), &dto.UpdateAudienceRunRequest{
		RunID: runID.String(),
		Name:  &name,
	}, testMetadata())
	require.NoError(t, err)

	require.NotNil(t, resp.Run.Name)
	assert.Equal(t, name, *resp.Run.Name)
	assert.Equal(t, map[string]any(frozen), resp.Run.Filters)
}

func TestGetRunRejectsMalformedID(t *testing.T) {
	flow := NewAudienceFlow(&fakeQueryService{}, newFakeRunRepo(), nil)

	_, err := flow.GetRun(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestDeleteRunUnknownID(t *testing.T) {
	flow := NewAudienceFlow(&fakeQueryService{}, newFakeRunRepo(), nil)

	err := flow.DeleteRun(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestGetRunResultsReturnsFrozenSet(t *testing.T) {
	runID := uuid.New()
	repo := newFakeRunRepo()
	repo.runs[runID] = &models.AudienceRun{
		ID:           runID,
		Status:       models.RunStatusCompleted,
		TotalResults: 2,
	}
	qs := &fakeQueryService{resultRows: []models.AudienceResultRow{
		{ContactID: 1, FirstName: "Ravi", LastName: "Sharma"},
		{ContactID: 2, FullName: "Priya Nair"},
	}}
	flow := NewAudienceFlow(qs, repo, nil)

	resp, err := flow.GetRunResults(context.Background(), runID.String())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Ravi Sharma", resp.Rows[0].Name)
	assert.Equal(t, "Priya Nair", resp.Rows[1].Name)
}
