package businessflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectra/lead-console/config"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
)

func newDashboardFixture(qs *fakeQueryService) (*DashboardFlowImpl, *fakeCampaignRepo, *fakeRunRepo) {
	campaignRepo := newFakeCampaignRepo()
	runRepo := newFakeRunRepo()
	flow := NewDashboardFlow(
		qs,
		&fakeCompanyRepo{companies: map[int64]*models.Company{}},
		campaignRepo,
		runRepo,
		nil,
		&config.CacheConfig{},
	).(*DashboardFlowImpl)
	return flow, campaignRepo, runRepo
}

func TestDashboardAggregatesCounters(t *testing.T) {
	qs := &fakeQueryService{summary: &models.ContactSummary{
		Total:      3200,
		WithEmail:  2900,
		WithMobile: 2100,
		New30d:     45,
	}}
	flow, campaignRepo, runRepo := newDashboardFixture(qs)

	campaignRepo.campaigns[uuid.New()] = &models.Campaign{
		Name:      "Q3 Outreach",
		StartDate: utils.UTCNow(),
		EndDate:   utils.UTCNowAdd(30 * 24 * time.Hour),
	}
	runRepo.runs[uuid.New()] = &models.AudienceRun{Status: models.RunStatusCompleted}

	out, err := flow.GetDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(3200), out.TotalContacts)
	assert.Equal(t, int64(2900), out.WithEmail)
	assert.Equal(t, int64(2100), out.WithMobile)
	assert.Equal(t, int64(45), out.NewLast30Days)
	assert.Equal(t, int64(1), out.TotalCampaigns)
	assert.Equal(t, int64(1), out.SavedRuns)
}

func TestDashboardSurfacesSummaryFailure(t *testing.T) {
	qs := &fakeQueryService{summaryErr: errors.New("summary procedure unavailable")}
	flow, _, _ := newDashboardFixture(qs)

	out, err := flow.GetDashboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)

	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "DASHBOARD_FAILED", bizErr.Code)
}
