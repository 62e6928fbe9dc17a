package businessflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"gorm.io/gorm"
)

// CampaignFlow handles campaign CRUD
type CampaignFlow interface {
	Create(ctx context.Context, request *dto.CreateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error)
	Get(ctx context.Context, campaignID string) (*dto.CampaignDTO, error)
	List(ctx context.Context, limit, offset int) (*dto.ListCampaignsResponse, error)
	Update(ctx context.Context, request *dto.UpdateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error)
	Delete(ctx context.Context, campaignID string) error
}

// CampaignFlowImpl implements the campaign business flow
type CampaignFlowImpl struct {
	campaignRepo repository.CampaignRepository
	db           *gorm.DB
}

// NewCampaignFlow creates a new campaign flow instance
func NewCampaignFlow(campaignRepo repository.CampaignRepository, db *gorm.DB) CampaignFlow {
	return &CampaignFlowImpl{
		campaignRepo: campaignRepo,
		db:           db,
	}
}

const campaignDateLayout = "2006-01-02"

func parseCampaignDate(s *string, fallback time.Time) (time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback, nil
	}
	return time.Parse(campaignDateLayout, strings.TrimSpace(*s))
}

// Create creates a new campaign
func (cf *CampaignFlowImpl) Create(ctx context.Context, request *dto.CreateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Campaign name is required", ErrCampaignNameRequired)
	}

	today := utils.UTCNow().Truncate(24 * time.Hour)
	startDate, err := parseCampaignDate(request.StartDate, today)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Invalid start date", err)
	}
	endDate, err := parseCampaignDate(request.EndDate, startDate)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Invalid end date", err)
	}
	if endDate.Before(startDate) {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "End date before start date", ErrCampaignDateOrder)
	}

	campaign := &models.Campaign{
		Name:          name,
		ClientName:    strings.TrimSpace(utils.Deref(request.ClientName)),
		ServicingLead: strings.TrimSpace(utils.Deref(request.ServicingLead)),
		StartDate:     startDate,
		EndDate:       endDate,
	}
	if request.ListSize != nil {
		campaign.ListSize = int(*request.ListSize)
	}

	if err := cf.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, NewBusinessError("CAMPAIGN_CREATE_FAILED", "Failed to create campaign", err)
	}

	out := ToCampaignDTO(*campaign)
	return &out, nil
}

// Get returns a single campaign
func (cf *CampaignFlowImpl) Get(ctx context.Context, campaignID string) (*dto.CampaignDTO, error) {
	id, err := utils.ParseUUID(campaignID)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Invalid campaign ID", errors.Join(ErrCampaignNotFound, err))
	}

	campaign, err := cf.campaignRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to load campaign", err)
	}
	if campaign == nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	out := ToCampaignDTO(*campaign)
	return &out, nil
}

// List returns campaigns newest first
func (cf *CampaignFlowImpl) List(ctx context.Context, limit, offset int) (*dto.ListCampaignsResponse, error) {
	filter := models.CampaignFilter{}

	campaigns, err := cf.campaignRepo.ByFilter(ctx, filter, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LIST_FAILED", "Failed to list campaigns", err)
	}

	total, err := cf.campaignRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LIST_FAILED", "Failed to count campaigns", err)
	}

	out := make([]dto.CampaignDTO, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, ToCampaignDTO(*campaign))
	}

	return &dto.ListCampaignsResponse{
		Campaigns: out,
		Total:     total,
	}, nil
}

// Update patches an existing campaign
func (cf *CampaignFlowImpl) Update(ctx context.Context, request *dto.UpdateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error) {
	id, err := utils.ParseUUID(request.ID)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Invalid campaign ID", errors.Join(ErrCampaignNotFound, err))
	}

	campaign, err := cf.campaignRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to load campaign", err)
	}
	if campaign == nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Campaign name is required", ErrCampaignNameRequired)
		}
		campaign.Name = name
	}
	if request.ClientName != nil {
		campaign.ClientName = strings.TrimSpace(*request.ClientName)
	}
	if request.ServicingLead != nil {
		campaign.ServicingLead = strings.TrimSpace(*request.ServicingLead)
	}
	if request.StartDate != nil {
		startDate, err := parseCampaignDate(request.StartDate, campaign.StartDate)
		if err != nil {
			return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Invalid start date", err)
		}
		campaign.StartDate = startDate
	}
	if request.EndDate != nil {
		endDate, err := parseCampaignDate(request.EndDate, campaign.EndDate)
		if err != nil {
			return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Invalid end date", err)
		}
		campaign.EndDate = endDate
	}
	if campaign.EndDate.Before(campaign.StartDate) {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "End date before start date", ErrCampaignDateOrder)
	}
	if request.ListSize != nil {
		campaign.ListSize = int(*request.ListSize)
	}
	campaign.UpdatedAt = utils.ToPtr(utils.UTCNow())

	if err := cf.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, NewBusinessError("CAMPAIGN_UPDATE_FAILED", "Failed to update campaign", err)
	}

	out := ToCampaignDTO(*campaign)
	return &out, nil
}

// Delete removes a campaign
func (cf *CampaignFlowImpl) Delete(ctx context.Context, campaignID string) error {
	id, err := utils.ParseUUID(campaignID)
	if err != nil {
		return NewBusinessError("CAMPAIGN_NOT_FOUND", "Invalid campaign ID", errors.Join(ErrCampaignNotFound, err))
	}

	campaign, err := cf.campaignRepo.ByID(ctx, id)
	if err != nil {
		return NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to load campaign", err)
	}
	if campaign == nil {
		return NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	if err := cf.campaignRepo.Delete(ctx, id); err != nil {
		return NewBusinessError("CAMPAIGN_DELETE_FAILED", "Failed to delete campaign", err)
	}
	return nil
}
