package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// AudienceHandlerInterface defines the contract for audience handlers
type AudienceHandlerInterface interface {
	Search(c fiber.Ctx) error
	Preview(c fiber.Ctx) error
	Build(c fiber.Ctx) error
	ListRuns(c fiber.Ctx) error
	GetRun(c fiber.Ctx) error
	UpdateRun(c fiber.Ctx) error
	DeleteRun(c fiber.Ctx) error
	GetRunResults(c fiber.Ctx) error
}

// AudienceHandler handles audience search, preview, build and run management
type AudienceHandler struct {
	baseHandler
	audienceFlow businessflow.AudienceFlow
}

// NewAudienceHandler creates a new audience handler
func NewAudienceHandler(audienceFlow businessflow.AudienceFlow) *AudienceHandler {
	return &AudienceHandler{
		baseHandler:  newBaseHandler(),
		audienceFlow: audienceFlow,
	}
}

// Search handles paginated audience searches
// @Summary Search Audience
// @Description Run a filtered, paginated search over the contact base
// @Tags Audience
// @Accept json
// @Produce json
// @Param request body dto.SearchAudienceRequest true "Filters and pagination"
// @Success 200 {object} dto.APIResponse{data=dto.SearchAudienceResponse} "Search results"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/audience/search [post]
func (h *AudienceHandler) Search(c fiber.Ctx) error {
	var req dto.SearchAudienceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.audienceFlow.Search(h.createRequestContext(c, "/api/v1/audience/search"), &req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Audience search failed", "AUDIENCE_SEARCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience search completed", result)
}

// Preview handles audience preview requests
// @Summary Preview Audience
// @Description Return a window of matching contacts without persisting anything
// @Tags Audience
// @Accept json
// @Produce json
// @Param request body dto.PreviewAudienceRequest true "Filters, pagination and seq token"
// @Success 200 {object} dto.APIResponse{data=dto.PreviewAudienceResponse} "Preview window"
// @Router /api/v1/audience/preview [post]
func (h *AudienceHandler) Preview(c fiber.Ctx) error {
	var req dto.PreviewAudienceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.audienceFlow.Preview(h.createRequestContext(c, "/api/v1/audience/preview"), &req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Audience preview failed", "AUDIENCE_PREVIEW_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience preview completed", result)
}

// Build handles audience build requests
// @Summary Build Audience
// @Description Materialize the audience, optionally saving it as a named run
// @Tags Audience
// @Accept json
// @Produce json
// @Param request body dto.BuildAudienceRequest true "Filters, save flag and metadata"
// @Success 200 {object} dto.APIResponse{data=dto.BuildAudienceResponse} "Build outcome"
// @Failure 207 {object} dto.APIResponse "Run saved but metadata patch failed"
// @Router /api/v1/audience/build [post]
func (h *AudienceHandler) Build(c fiber.Ctx) error {
	var req dto.BuildAudienceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.audienceFlow.Build(h.createRequestContext(c, "/api/v1/audience/build"), &req, metadata)
	if err != nil {
		if result != nil && errors.Is(err, businessflow.ErrRunMetadataSaveFailed) {
			// The run committed; report partial success with the run ID.
			return c.Status(fiber.StatusMultiStatus).JSON(dto.APIResponse{
				Success: false,
				Message: "Run saved but metadata update failed",
				Data:    result,
				Error:   dto.ErrorDetail{Code: "RUN_METADATA_SAVE_FAILED"},
			})
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Audience build failed", "AUDIENCE_BUILD_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience build completed", result)
}

// ListRuns handles saved run listing
// @Summary List Audience Runs
// @Description List saved audience runs newest first
// @Tags Audience
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.APIResponse{data=dto.ListAudienceRunsResponse} "Saved runs"
// @Router /api/v1/audience/runs [get]
func (h *AudienceHandler) ListRuns(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	result, err := h.audienceFlow.ListRuns(h.createRequestContext(c, "/api/v1/audience/runs"), limit, offset)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list runs", "RUN_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience runs retrieved", result)
}

// GetRun handles single run retrieval
// @Summary Get Audience Run
// @Description Retrieve a saved audience run by ID
// @Tags Audience
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.APIResponse{data=dto.AudienceRunDTO} "Run"
// @Failure 404 {object} dto.APIResponse "Run not found"
// @Router /api/v1/audience/runs/{id} [get]
func (h *AudienceHandler) GetRun(c fiber.Ctx) error {
	result, err := h.audienceFlow.GetRun(h.createRequestContext(c, "/api/v1/audience/runs/:id"), c.Params("id"))
	if err != nil {
		if businessflow.IsRunNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Audience run not found", "RUN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load run", "RUN_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience run retrieved", result)
}

// UpdateRun handles run metadata patches
// @Summary Update Audience Run
// @Description Patch the name and notes of a saved run; filters are immutable
// @Tags Audience
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param request body dto.UpdateAudienceRunRequest true "Fields to patch"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateAudienceRunResponse} "Patched run"
// @Failure 404 {object} dto.APIResponse "Run not found"
// @Router /api/v1/audience/runs/{id} [patch]
func (h *AudienceHandler) UpdateRun(c fiber.Ctx) error {
	var req dto.UpdateAudienceRunRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.RunID = c.Params("id")

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.audienceFlow.UpdateRun(h.createRequestContext(c, "/api/v1/audience/runs/:id"), &req, metadata)
	if err != nil {
		if businessflow.IsRunNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Audience run not found", "RUN_NOT_FOUND", nil)
		}
		if errors.Is(err, businessflow.ErrRunUpdateFieldsRequired) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "No fields to update", "RUN_UPDATE_EMPTY", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update run", "RUN_METADATA_SAVE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience run updated", result)
}

// DeleteRun handles run deletion
// @Summary Delete Audience Run
// @Description Delete a saved audience run
// @Tags Audience
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.APIResponse "Run deleted"
// @Failure 404 {object} dto.APIResponse "Run not found"
// @Router /api/v1/audience/runs/{id} [delete]
func (h *AudienceHandler) DeleteRun(c fiber.Ctx) error {
	err := h.audienceFlow.DeleteRun(h.createRequestContext(c, "/api/v1/audience/runs/:id"), c.Params("id"))
	if err != nil {
		if businessflow.IsRunNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Audience run not found", "RUN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete run", "RUN_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audience run deleted", nil)
}

// GetRunResults handles run result retrieval
// @Summary Get Run Results
// @Description Retrieve the frozen result set of a saved run
// @Tags Audience
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetAudienceResultsResponse} "Results"
// @Failure 404 {object} dto.APIResponse "Run not found"
// @Router /api/v1/audience/runs/{id}/results [get]
func (h *AudienceHandler) GetRunResults(c fiber.Ctx) error {
	result, err := h.audienceFlow.GetRunResults(h.createRequestContext(c, "/api/v1/audience/runs/:id/results"), c.Params("id"))
	if err != nil {
		if businessflow.IsRunNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Audience run not found", "RUN_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load run results", "RUN_RESULTS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Run results retrieved", result)
}
