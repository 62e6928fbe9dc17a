package businessflow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/app/services"
	"github.com/prospectra/lead-console/config"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"github.com/redis/go-redis/v9"
)

// DashboardFlow serves the console landing page aggregates
type DashboardFlow interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// DashboardFlowImpl implements the dashboard business flow. The contact
// summary comes from the query service; the remaining counters are cheap
// repository counts. The whole payload is cached briefly in redis because
// the landing page is the most requested endpoint.
type DashboardFlowImpl struct {
	queryService services.QueryService
	companyRepo  repository.CompanyRepository
	campaignRepo repository.CampaignRepository
	runRepo      repository.AudienceRunRepository
	rc           *redis.Client
	cacheConfig  *config.CacheConfig
}

// NewDashboardFlow creates a new dashboard flow instance
func NewDashboardFlow(
	queryService services.QueryService,
	companyRepo repository.CompanyRepository,
	campaignRepo repository.CampaignRepository,
	runRepo repository.AudienceRunRepository,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) DashboardFlow {
	return &DashboardFlowImpl{
		queryService: queryService,
		companyRepo:  companyRepo,
		campaignRepo: campaignRepo,
		runRepo:      runRepo,
		rc:           rc,
		cacheConfig:  cacheConfig,
	}
}

// GetDashboard returns the landing page aggregates
func (df *DashboardFlowImpl) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	cacheKey := redisKey(*df.cacheConfig, utils.ContactSummaryCacheKey)

	if df.rc != nil {
		if bs, err := df.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			var out dto.DashboardResponse
			if err := json.Unmarshal(bs, &out); err == nil {
				return &out, nil
			}
		}
	}

	summary, err := df.queryService.GetContactSummary(ctx)
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to load contact summary", err)
	}

	totalCompanies, err := df.companyRepo.Count(ctx, models.CompanyFilter{})
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to count companies", err)
	}

	totalCampaigns, err := df.campaignRepo.Count(ctx, models.CampaignFilter{})
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to count campaigns", err)
	}

	activeCampaigns, err := df.campaignRepo.CountActiveOn(ctx, utils.UTCNow())
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to count active campaigns", err)
	}

	completed := models.RunStatusCompleted
	savedRuns, err := df.runRepo.Count(ctx, models.AudienceRunFilter{Status: &completed})
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to count saved runs", err)
	}

	out := &dto.DashboardResponse{
		TotalContacts:   summary.Total,
		WithEmail:       summary.WithEmail,
		WithMobile:      summary.WithMobile,
		NewLast30Days:   summary.New30d,
		TotalCompanies:  totalCompanies,
		TotalCampaigns:  totalCampaigns,
		ActiveCampaigns: activeCampaigns,
		SavedRuns:       savedRuns,
	}

	if df.rc != nil {
		if bs, err := json.Marshal(out); err == nil {
			ttl := df.cacheConfig.DefaultTTL
			if ttl == 0 || ttl > time.Minute {
				ttl = time.Minute
			}
			_ = df.rc.Set(ctx, cacheKey, bs, ttl).Err()
		}
	}

	return out, nil
}
