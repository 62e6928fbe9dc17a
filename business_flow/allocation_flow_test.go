package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCampaignRepo is an in-memory CampaignRepository
type fakeCampaignRepo struct {
	campaigns map[uuid.UUID]*models.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[uuid.UUID]*models.Campaign)}
}

func (f *fakeCampaignRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return f.campaigns[id], nil
}

func (f *fakeCampaignRepo) ByFilter(ctx context.Context, filter models.CampaignFilter, orderBy string, limit, offset int) ([]*models.Campaign, error) {
	out := make([]*models.Campaign, 0, len(f.campaigns))
	for _, c := range f.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCampaignRepo) Save(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	f.campaigns[campaign.ID] = campaign
	return nil
}

func (f *fakeCampaignRepo) Count(ctx context.Context, filter models.CampaignFilter) (int64, error) {
	return int64(len(f.campaigns)), nil
}

func (f *fakeCampaignRepo) CountActiveOn(ctx context.Context, day time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeCampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	f.campaigns[campaign.ID] = campaign
	return nil
}

func (f *fakeCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.campaigns, id)
	return nil
}

// fakeFileRepo is an in-memory CampaignFileRepository that counts writes
type fakeFileRepo struct {
	files       map[uuid.UUID]*models.CampaignFile
	allocations []*models.CampaignAudienceAllocation
	writeCalls  int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uuid.UUID]*models.CampaignFile)}
}

func (f *fakeFileRepo) ByID(ctx context.Context, id uuid.UUID) (*models.CampaignFile, error) {
	return f.files[id], nil
}

func (f *fakeFileRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.CampaignFile, error) {
	out := make([]*models.CampaignFile, 0)
	for _, file := range f.files {
		if file.CampaignID == campaignID {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFileRepo) Save(ctx context.Context, file *models.CampaignFile) error {
	f.writeCalls++
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	f.files[file.ID] = file
	return nil
}

func (f *fakeFileRepo) SaveContactsBatch(ctx context.Context, contacts []*models.CampaignFileContact) error {
	f.writeCalls++
	return nil
}

func (f *fakeFileRepo) SetAllocatedCount(ctx context.Context, fileID uuid.UUID, allocated int64) error {
	f.writeCalls++
	if file, ok := f.files[fileID]; ok {
		file.AllocatedContacts = int(allocated)
	}
	return nil
}

func (f *fakeFileRepo) RecordAllocation(ctx context.Context, allocation *models.CampaignAudienceAllocation) error {
	f.writeCalls++
	f.allocations = append(f.allocations, allocation)
	return nil
}

func (f *fakeFileRepo) ListAllocationsByRun(ctx context.Context, runID uuid.UUID) ([]*models.CampaignAudienceAllocation, error) {
	out := make([]*models.CampaignAudienceAllocation, 0)
	for _, alloc := range f.allocations {
		if alloc.RunID == runID {
			out = append(out, alloc)
		}
	}
	return out, nil
}

// fakeContactRepo serves ListByIDs from a fixed map and ByFilter from a slice
type fakeContactRepo struct {
	contacts map[int64]*models.Contact
	filtered []*models.Contact
	byEmail  map[string]*models.Contact
	saved    []*models.Contact
	updated  []*models.Contact
}

func (f *fakeContactRepo) ByID(ctx context.Context, id int64) (*models.Contact, error) {
	return f.contacts[id], nil
}

func (f *fakeContactRepo) ByFilter(ctx context.Context, filter models.ContactFilter, orderBy string, limit, offset int) ([]*models.Contact, error) {
	return f.filtered, nil
}

func (f *fakeContactRepo) Save(ctx context.Context, contact *models.Contact) error {
	if contact.ContactID == 0 {
		contact.ContactID = int64(len(f.saved) + 1)
	}
	f.saved = append(f.saved, contact)
	return nil
}

func (f *fakeContactRepo) SaveBatch(ctx context.Context, contacts []*models.Contact) error {
	return nil
}

func (f *fakeContactRepo) Count(ctx context.Context, filter models.ContactFilter) (int64, error) {
	return 0, nil
}

func (f *fakeContactRepo) Exists(ctx context.Context, filter models.ContactFilter) (bool, error) {
	return false, nil
}

func (f *fakeContactRepo) ByOfficialEmail(ctx context.Context, email string) (*models.Contact, error) {
	return f.byEmail[email], nil
}

func (f *fakeContactRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Contact, error) {
	out := make([]*models.Contact, 0, len(ids))
	for _, id := range ids {
		if c, ok := f.contacts[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, contact *models.Contact) error {
	f.updated = append(f.updated, contact)
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, contactID int64) error { return nil }

func (f *fakeContactRepo) Summary(ctx context.Context) (*models.ContactSummary, error) {
	return &models.ContactSummary{}, nil
}

// fakeCompanyRepo serves ListByIDs from a fixed map and records writes
type fakeCompanyRepo struct {
	companies map[int64]*models.Company
	saved     []*models.Company
	updated   []*models.Company
}

func (f *fakeCompanyRepo) ByID(ctx context.Context, id int64) (*models.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) ByFilter(ctx context.Context, filter models.CompanyFilter, orderBy string, limit, offset int) ([]*models.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Save(ctx context.Context, company *models.Company) error {
	if company.CompanyID == 0 {
		company.CompanyID = int64(len(f.saved) + 1)
	}
	f.saved = append(f.saved, company)
	return nil
}

func (f *fakeCompanyRepo) SaveBatch(ctx context.Context, companies []*models.Company) error {
	return nil
}

func (f *fakeCompanyRepo) Count(ctx context.Context, filter models.CompanyFilter) (int64, error) {
	return 0, nil
}

func (f *fakeCompanyRepo) Exists(ctx context.Context, filter models.CompanyFilter) (bool, error) {
	return false, nil
}

func (f *fakeCompanyRepo) ByName(ctx context.Context, name string) (*models.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Company, error) {
	out := make([]*models.Company, 0, len(ids))
	for _, id := range ids {
		if c, ok := f.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	f.updated = append(f.updated, company)
	return nil
}

func (f *fakeCompanyRepo) Delete(ctx context.Context, companyID int64) error { return nil }

func newAllocationFixture() (*AllocationFlowImpl, *fakeRunRepo, *fakeCampaignRepo, *fakeFileRepo) {
	runRepo := newFakeRunRepo()
	campaignRepo := newFakeCampaignRepo()
	fileRepo := newFakeFileRepo()
	flow := NewAllocationFlow(
		&fakeQueryService{},
		runRepo,
		campaignRepo,
		fileRepo,
		&fakeContactRepo{},
		&fakeCompanyRepo{},
		nil,
	).(*AllocationFlowImpl)
	return flow, runRepo, campaignRepo, fileRepo
}

func TestAllocateRequiresFileName(t *testing.T) {
	flow, _, _, fileRepo := newAllocationFixture()

	_, err := flow.Allocate(context.Background(), &dto.AllocateAudienceRequest{
		RunID:      uuid.New().String(),
		CampaignID: uuid.New().String(),
		FileName:   "   ",
		Limit:      10,
	}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNameRequired)
	assert.Zero(t, fileRepo.writeCalls)
}

func TestAllocateRequiresPositiveLimit(t *testing.T) {
	flow, _, _, _ := newAllocationFixture()

	_, err := flow.Allocate(context.Background(), &dto.AllocateAudienceRequest{
		RunID:      uuid.New().String(),
		CampaignID: uuid.New().String(),
		FileName:   "wave-1",
		Limit:      0,
	}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocationLimit)
}

func TestAllocateRejectsDraftRun(t *testing.T) {
	flow, runRepo, campaignRepo, _ := newAllocationFixture()

	run := &models.AudienceRun{ID: uuid.New(), Status: models.RunStatusDraft}
	runRepo.runs[run.ID] = run
	campaign := &models.Campaign{ID: uuid.New()}
	campaignRepo.campaigns[campaign.ID] = campaign

	_, err := flow.Allocate(context.Background(), &dto.AllocateAudienceRequest{
		RunID:      run.ID.String(),
		CampaignID: campaign.ID.String(),
		FileName:   "wave-1",
		Limit:      10,
	}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotSaved)
}

func TestAllocateUnknownCampaign(t *testing.T) {
	flow, runRepo, _, _ := newAllocationFixture()

	run := &models.AudienceRun{ID: uuid.New(), Status: models.RunStatusCompleted, TotalResults: 100}
	runRepo.runs[run.ID] = run

	_, err := flow.Allocate(context.Background(), &dto.AllocateAudienceRequest{
		RunID:      run.ID.String(),
		CampaignID: uuid.New().String(),
		FileName:   "wave-1",
		Limit:      10,
	}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestAllocateOverAllocationGuardRunsBeforeWrites(t *testing.T) {
	flow, runRepo, campaignRepo, fileRepo := newAllocationFixture()

	run := &models.AudienceRun{ID: uuid.New(), Status: models.RunStatusCompleted, TotalResults: 100}
	runRepo.runs[run.ID] = run
	campaign := &models.Campaign{ID: uuid.New()}
	campaignRepo.campaigns[campaign.ID] = campaign

	// 80 of 100 already taken by an earlier file
	fileRepo.allocations = append(fileRepo.allocations, &models.CampaignAudienceAllocation{
		RunID:          run.ID,
		CampaignID:     campaign.ID,
		AllocatedCount: 80,
	})

	_, err := flow.Allocate(context.Background(), &dto.AllocateAudienceRequest{
		RunID:      run.ID.String(),
		CampaignID: campaign.ID.String(),
		FileName:   "wave-2",
		Limit:      30,
	}, testMetadata())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverAllocation)
	assert.Zero(t, fileRepo.writeCalls)
	assert.Empty(t, fileRepo.files)

	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "OVER_ALLOCATION", bizErr.Code)
	assert.Contains(t, bizErr.Message, "20 of 100")
}

func TestBuildSnapshotsEnrichment(t *testing.T) {
	companyID := int64(7)
	contactRepo := &fakeContactRepo{contacts: map[int64]*models.Contact{
		1: {ContactID: 1, Designation: utils.ToPtr("Head of Procurement")},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[int64]*models.Company{
		companyID: {
			CompanyID:      companyID,
			Website:        utils.ToPtr("https://acme.example.com"),
			TurnoverINRCr:  utils.ToPtr(42.5),
			PostalAddress1: utils.ToPtr("14 Industrial Estate"),
			PostalAddress2: utils.ToPtr("Pune 411001"),
		},
	}}

	flow := NewAllocationFlow(
		&fakeQueryService{}, newFakeRunRepo(), newFakeCampaignRepo(), newFakeFileRepo(),
		contactRepo, companyRepo, nil,
	).(*AllocationFlowImpl)

	file := &models.CampaignFile{ID: uuid.New()}
	rows := []models.AudienceResultRow{
		{ContactID: 1, CompanyID: &companyID, FirstName: "Ravi", Email: "ravi@acme.example.com"},
		{ContactID: 2, FirstName: "Priya"}, // no company, no master row
	}

	snapshots, err := flow.buildSnapshots(context.Background(), file, rows, true)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	first := snapshots[0]
	assert.Equal(t, file.ID, first.CampaignFileID)
	require.NotNil(t, first.Designation)
	assert.Equal(t, "Head of Procurement", *first.Designation)
	require.NotNil(t, first.Website)
	assert.Equal(t, "https://acme.example.com", *first.Website)
	require.NotNil(t, first.PostalAddress)
	assert.Equal(t, "14 Industrial Estate, Pune 411001", *first.PostalAddress)

	// Enrichment misses leave the base snapshot intact
	second := snapshots[1]
	require.NotNil(t, second.FirstName)
	assert.Equal(t, "Priya", *second.FirstName)
	assert.Nil(t, second.Designation)
	assert.Nil(t, second.Website)
	assert.Nil(t, second.PostalAddress)
}

func TestBuildSnapshotsWithoutEnrichment(t *testing.T) {
	flow, _, _, _ := newAllocationFixture()

	file := &models.CampaignFile{ID: uuid.New()}
	rows := []models.AudienceResultRow{
		{ContactID: 1, FirstName: "Ravi", City: "Pune"},
	}

	snapshots, err := flow.buildSnapshots(context.Background(), file, rows, false)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Nil(t, snapshots[0].Designation)
	assert.Nil(t, snapshots[0].Website)
	require.NotNil(t, snapshots[0].City)
	assert.Equal(t, "Pune", *snapshots[0].City)
}

func TestJoinPostalAddress(t *testing.T) {
	company := &models.Company{
		PostalAddress1: utils.ToPtr("14 Industrial Estate"),
		PostalAddress2: utils.ToPtr("  "),
		PostalAddress3: utils.ToPtr("Pune 411001"),
	}
	joined := joinPostalAddress(company)
	require.NotNil(t, joined)
	assert.Equal(t, "14 Industrial Estate, Pune 411001", *joined)

	assert.Nil(t, joinPostalAddress(&models.Company{}))
}

func TestListAllocationsSumsLedger(t *testing.T) {
	flow, _, _, fileRepo := newAllocationFixture()

	runID := uuid.New()
	fileRepo.allocations = []*models.CampaignAudienceAllocation{
		{ID: 1, RunID: runID, CampaignID: uuid.New(), AllocatedCount: 80},
		{ID: 2, RunID: runID, CampaignID: uuid.New(), AllocatedCount: 20},
		{ID: 3, RunID: uuid.New(), CampaignID: uuid.New(), AllocatedCount: 500},
	}

	resp, err := flow.ListAllocations(context.Background(), runID.String())
	require.NoError(t, err)
	assert.Len(t, resp.Allocations, 2)
	assert.Equal(t, int64(100), resp.TotalAllocated)
}
