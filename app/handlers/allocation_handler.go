package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// AllocationHandlerInterface defines the contract for allocation handlers
type AllocationHandlerInterface interface {
	Allocate(c fiber.Ctx) error
	ListFiles(c fiber.Ctx) error
	ListAllocations(c fiber.Ctx) error
}

// AllocationHandler handles audience-to-campaign allocation requests
type AllocationHandler struct {
	baseHandler
	allocationFlow businessflow.AllocationFlow
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationFlow businessflow.AllocationFlow) *AllocationHandler {
	return &AllocationHandler{
		baseHandler:    newBaseHandler(),
		allocationFlow: allocationFlow,
	}
}

// Allocate handles allocation of a saved run into a campaign file
// @Summary Allocate Audience
// @Description Move contacts from a saved run into a new campaign file
// @Tags Allocation
// @Accept json
// @Produce json
// @Param request body dto.AllocateAudienceRequest true "Allocation parameters"
// @Success 200 {object} dto.APIResponse{data=dto.AllocateAudienceResponse} "Allocation committed"
// @Failure 404 {object} dto.APIResponse "Run or campaign not found"
// @Failure 409 {object} dto.APIResponse "Over-allocation"
// @Router /api/v1/allocations [post]
func (h *AllocationHandler) Allocate(c fiber.Ctx) error {
	var req dto.AllocateAudienceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.allocationFlow.Allocate(h.createRequestContext(c, "/api/v1/allocations"), &req, metadata)
	if err != nil {
		if businessflow.IsRunNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Audience run not found", "RUN_NOT_FOUND", nil)
		}
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}
		if businessflow.IsOverAllocation(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, err.Error(), "OVER_ALLOCATION", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Allocation failed", "ALLOCATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Allocation committed", result)
}

// ListFiles handles campaign file listing
// @Summary List Campaign Files
// @Description List the contact files of a campaign newest first
// @Tags Allocation
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListCampaignFilesResponse} "Files"
// @Router /api/v1/campaigns/{id}/files [get]
func (h *AllocationHandler) ListFiles(c fiber.Ctx) error {
	result, err := h.allocationFlow.ListFiles(h.createRequestContext(c, "/api/v1/campaigns/:id/files"), c.Params("id"))
	if err != nil {
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list files", "FILE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign files retrieved", result)
}

// ListAllocations handles allocation ledger retrieval
// @Summary List Run Allocations
// @Description List the allocation ledger of a saved run
// @Tags Allocation
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListAllocationsResponse} "Allocations"
// @Router /api/v1/audience/runs/{id}/allocations [get]
func (h *AllocationHandler) ListAllocations(c fiber.Ctx) error {
	result, err := h.allocationFlow.ListAllocations(h.createRequestContext(c, "/api/v1/audience/runs/:id/allocations"), c.Params("id"))
	if err != nil {
		if businessflow.IsRunNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Audience run not found", "RUN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list allocations", "ALLOCATION_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Allocations retrieved", result)
}
