package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// CampaignHandlerInterface defines the contract for campaign handlers
type CampaignHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	baseHandler
	campaignFlow businessflow.CampaignFlow
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignFlow businessflow.CampaignFlow) *CampaignHandler {
	return &CampaignHandler{
		baseHandler:  newBaseHandler(),
		campaignFlow: campaignFlow,
	}
}

// Create handles campaign creation
// @Summary Create Campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param request body dto.CreateCampaignRequest true "Campaign fields"
// @Success 201 {object} dto.APIResponse{data=dto.CampaignDTO} "Campaign created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.campaignFlow.Create(h.createRequestContext(c, "/api/v1/campaigns"), &req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create campaign", "CAMPAIGN_CREATE_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Campaign created", result)
}

// Get handles single campaign retrieval
// @Summary Get Campaign
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignDTO} "Campaign"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) Get(c fiber.Ctx) error {
	result, err := h.campaignFlow.Get(h.createRequestContext(c, "/api/v1/campaigns/:id"), c.Params("id"))
	if err != nil {
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load campaign", "CAMPAIGN_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign retrieved", result)
}

// List handles campaign listing
// @Summary List Campaigns
// @Tags Campaigns
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.APIResponse{data=dto.ListCampaignsResponse} "Campaigns"
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) List(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	result, err := h.campaignFlow.List(h.createRequestContext(c, "/api/v1/campaigns"), limit, offset)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list campaigns", "CAMPAIGN_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaigns retrieved", result)
}

// Update handles campaign patches
// @Summary Update Campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body dto.UpdateCampaignRequest true "Fields to patch"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignDTO} "Campaign updated"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Router /api/v1/campaigns/{id} [patch]
func (h *CampaignHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateCampaignRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.ID = c.Params("id")

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.campaignFlow.Update(h.createRequestContext(c, "/api/v1/campaigns/:id"), &req, metadata)
	if err != nil {
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update campaign", "CAMPAIGN_UPDATE_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign updated", result)
}

// Delete handles campaign deletion
// @Summary Delete Campaign
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.APIResponse "Campaign deleted"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Router /api/v1/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c fiber.Ctx) error {
	err := h.campaignFlow.Delete(h.createRequestContext(c, "/api/v1/campaigns/:id"), c.Params("id"))
	if err != nil {
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete campaign", "CAMPAIGN_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign deleted", nil)
}
