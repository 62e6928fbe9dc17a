// Package tests contains integration tests for the business flows
package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	testingutil "github.com/prospectra/lead-console/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQueryService serves a fixed result set for a saved run, standing in for
// the audience stored procedures which are not part of the migrated schema.
type stubQueryService struct {
	rows       []models.AudienceResultRow
	resultsErr error
}

func (s *stubQueryService) SearchAudience(ctx context.Context, filters map[string]any, page, pageSize int) ([]models.AudienceResultRow, int64, error) {
	return s.rows, int64(len(s.rows)), nil
}

func (s *stubQueryService) BuildAudience(ctx context.Context, filters map[string]any, save bool) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *stubQueryService) PreviewAudience(ctx context.Context, filters map[string]any, limit, offset int) ([]models.AudienceResultRow, int64, error) {
	return s.rows, int64(len(s.rows)), nil
}

func (s *stubQueryService) GetAudienceResults(ctx context.Context, runID uuid.UUID) ([]models.AudienceResultRow, error) {
	if s.resultsErr != nil {
		return nil, s.resultsErr
	}
	return s.rows, nil
}

func (s *stubQueryService) GetContactSummary(ctx context.Context) (*models.ContactSummary, error) {
	return &models.ContactSummary{}, nil
}

func resultRowsFromContacts(contacts []*models.Contact) []models.AudienceResultRow {
	rows := make([]models.AudienceResultRow, 0, len(contacts))
	for _, c := range contacts {
		row := models.AudienceResultRow{
			ContactID: c.ContactID,
			CompanyID: c.CompanyID,
		}
		if c.FirstName != nil {
			row.FirstName = *c.FirstName
		}
		if c.LastName != nil {
			row.LastName = *c.LastName
		}
		if c.OfficialEmailID != nil {
			row.Email = *c.OfficialEmailID
		}
		rows = append(rows, row)
	}
	return rows
}

func TestAllocationFlowIntegration(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

		runRepo := repository.NewAudienceRunRepository(testDB.DB)
		campaignRepo := repository.NewCampaignRepository(testDB.DB)
		fileRepo := repository.NewCampaignFileRepository(testDB.DB)
		contactRepo := repository.NewContactRepository(testDB.DB)
		companyRepo := repository.NewCompanyRepository(testDB.DB)

		newFlow := func(qs *stubQueryService) businessflow.AllocationFlow {
			return businessflow.NewAllocationFlow(qs, runRepo, campaignRepo, fileRepo, contactRepo, companyRepo, testDB.DB)
		}

		t.Run("AllocateWithEnrichment", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			company, err := fixtures.CreateTestCompany()
			require.NoError(t, err)
			contacts, err := fixtures.CreateContactsForCompany(company, 5)
			require.NoError(t, err)

			run, err := fixtures.CreateSavedRun(5)
			require.NoError(t, err)
			campaign, err := fixtures.CreateTestCampaign()
			require.NoError(t, err)

			flow := newFlow(&stubQueryService{rows: resultRowsFromContacts(contacts)})

			resp, err := flow.Allocate(ctx, &dto.AllocateAudienceRequest{
				RunID:      run.ID.String(),
				CampaignID: campaign.ID.String(),
				FileName:   "wave-1",
				Limit:      3,
				Enrich:     true,
			}, metadata)
			require.NoError(t, err)
			assert.Equal(t, int64(3), resp.Allocated)

			fileID, err := uuid.Parse(resp.FileID)
			require.NoError(t, err)
			file, err := fileRepo.ByID(ctx, fileID)
			require.NoError(t, err)
			require.NotNil(t, file)
			assert.Equal(t, 3, file.AllocatedContacts)

			var snapshots []*models.CampaignFileContact
			require.NoError(t, testDB.DB.Where("campaign_file_id = ?", fileID).
				Order("contact_id ASC").Find(&snapshots).Error)
			require.Len(t, snapshots, 3)
			// First three of the frozen result set, in order
			assert.Equal(t, contacts[0].ContactID, snapshots[0].ContactID)
			assert.Equal(t, contacts[2].ContactID, snapshots[2].ContactID)
			// Enrichment joined from the masters
			require.NotNil(t, snapshots[0].Designation)
			assert.Equal(t, "Head of Procurement", *snapshots[0].Designation)
			require.NotNil(t, snapshots[0].Website)

			allocations, err := fileRepo.ListAllocationsByRun(ctx, run.ID)
			require.NoError(t, err)
			require.Len(t, allocations, 1)
			assert.Equal(t, 3, allocations[0].AllocatedCount)
		})

		t.Run("SecondAllocationSkipsEarlierSlice", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			company, err := fixtures.CreateTestCompany()
			require.NoError(t, err)
			contacts, err := fixtures.CreateContactsForCompany(company, 5)
			require.NoError(t, err)

			run, err := fixtures.CreateSavedRun(5)
			require.NoError(t, err)
			campaign, err := fixtures.CreateTestCampaign()
			require.NoError(t, err)

			flow := newFlow(&stubQueryService{rows: resultRowsFromContacts(contacts)})

			first, err := flow.Allocate(ctx, &dto.AllocateAudienceRequest{
				RunID:      run.ID.String(),
				CampaignID: campaign.ID.String(),
				FileName:   "wave-1",
				Limit:      3,
			}, metadata)
			require.NoError(t, err)
			assert.Equal(t, int64(3), first.Allocated)

			second, err := flow.Allocate(ctx, &dto.AllocateAudienceRequest{
				RunID:      run.ID.String(),
				CampaignID: campaign.ID.String(),
				FileName:   "wave-2",
				Limit:      2,
			}, metadata)
			require.NoError(t, err)
			assert.Equal(t, int64(2), second.Allocated)

			secondID, err := uuid.Parse(second.FileID)
			require.NoError(t, err)
			var snapshots []*models.CampaignFileContact
			require.NoError(t, testDB.DB.Where("campaign_file_id = ?", secondID).
				Order("contact_id ASC").Find(&snapshots).Error)
			require.Len(t, snapshots, 2)
			assert.Equal(t, contacts[3].ContactID, snapshots[0].ContactID)
			assert.Equal(t, contacts[4].ContactID, snapshots[1].ContactID)

			// The run is now exhausted
			_, err = flow.Allocate(ctx, &dto.AllocateAudienceRequest{
				RunID:      run.ID.String(),
				CampaignID: campaign.ID.String(),
				FileName:   "wave-3",
				Limit:      1,
			}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsOverAllocation(err))
		})

		t.Run("FailureRollsBackEverything", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			run, err := fixtures.CreateSavedRun(5)
			require.NoError(t, err)
			campaign, err := fixtures.CreateTestCampaign()
			require.NoError(t, err)

			flow := newFlow(&stubQueryService{resultsErr: errors.New("procedure failed")})

			_, err = flow.Allocate(ctx, &dto.AllocateAudienceRequest{
				RunID:      run.ID.String(),
				CampaignID: campaign.ID.String(),
				FileName:   "wave-1",
				Limit:      3,
			}, metadata)
			require.Error(t, err)

			// Nothing committed: no file, no ledger entry
			files, err := fileRepo.ListByCampaign(ctx, campaign.ID)
			require.NoError(t, err)
			assert.Empty(t, files)
			allocations, err := fileRepo.ListAllocationsByRun(ctx, run.ID)
			require.NoError(t, err)
			assert.Empty(t, allocations)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestBulkUploadFlowIntegration(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

		contactRepo := repository.NewContactRepository(testDB.DB)
		companyRepo := repository.NewCompanyRepository(testDB.DB)
		uploadFlow := businessflow.NewBulkUploadFlow(contactRepo, companyRepo, testDB.DB)

		buildUpload := func(rows [][]string) []byte {
			t.Helper()
			template, err := uploadFlow.BuildTemplate()
			require.NoError(t, err)
			data, err := appendRowsToSheet(template, rows)
			require.NoError(t, err)
			return data
		}

		t.Run("InsertAndCompanyAutoCreate", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			data := buildUpload([][]string{
				// Company Name, Industry, Website, Employees, Turnover, Salute, First, Last,
				// Designation, Department, Job Level, Specialization, Official Email, Personal Email,
				// Mobile, Direct Phone, Gender
				{"Globex Corporation", "Manufacturing", "https://globex.example.com", "500", "120.5",
					"Ms", "Priya", "Nair", "CFO", "Finance", "CXO", "",
					"priya.nair@globex.example.com", "", "+919876543210", "", "Female"},
			})

			resp, err := uploadFlow.UploadContacts(ctx, bytesReader(data), metadata)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Inserted)
			assert.Zero(t, resp.Failed)

			company, err := companyRepo.ByName(ctx, "Globex Corporation")
			require.NoError(t, err)
			require.NotNil(t, company)
			require.NotNil(t, company.NoOfEmployeesTotal)
			assert.Equal(t, 500, *company.NoOfEmployeesTotal)

			contact, err := contactRepo.ByOfficialEmail(ctx, "priya.nair@globex.example.com")
			require.NoError(t, err)
			require.NotNil(t, contact)
			require.NotNil(t, contact.CompanyID)
			assert.Equal(t, company.CompanyID, *contact.CompanyID)
		})

		t.Run("DuplicateEmailUpdatesInPlace", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			first := buildUpload([][]string{
				{"", "", "", "", "", "", "Ravi", "Sharma", "Manager", "", "", "",
					"ravi.sharma@example.com", "", "", "", ""},
			})
			resp, err := uploadFlow.UploadContacts(ctx, bytesReader(first), metadata)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Inserted)

			second := buildUpload([][]string{
				{"", "", "", "", "", "", "Ravi", "Sharma", "Director", "", "", "",
					"ravi.sharma@example.com", "", "", "", ""},
			})
			resp, err = uploadFlow.UploadContacts(ctx, bytesReader(second), metadata)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Updated)
			assert.Zero(t, resp.Inserted)

			count, err := contactRepo.Count(ctx, models.ContactFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)

			contact, err := contactRepo.ByOfficialEmail(ctx, "ravi.sharma@example.com")
			require.NoError(t, err)
			require.NotNil(t, contact)
			assert.Equal(t, "Director", *contact.Designation)
		})

		t.Run("BadRowsDoNotBlockGoodRows", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			data := buildUpload([][]string{
				{"", "", "", "", "", "", "Good", "Row", "", "", "", "",
					fmt.Sprintf("good.row.%d@example.com", 1), "", "", "", ""},
				{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "+919900000000", "", ""},
				{"", "", "", "", "", "", "Also", "Good", "", "", "", "",
					fmt.Sprintf("good.row.%d@example.com", 2), "", "", "", ""},
			})

			resp, err := uploadFlow.UploadContacts(ctx, bytesReader(data), metadata)
			require.NoError(t, err)
			assert.Equal(t, 2, resp.Inserted)
			assert.Equal(t, 1, resp.Failed)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, 3, resp.Errors[0].Row)

			count, err := contactRepo.Count(ctx, models.ContactFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)
		})

		return nil
	})
	require.NoError(t, err)
}
