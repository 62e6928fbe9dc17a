package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// CompanyHandlerInterface defines the contract for company handlers
type CompanyHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	baseHandler
	companyFlow businessflow.CompanyFlow
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyFlow businessflow.CompanyFlow) *CompanyHandler {
	return &CompanyHandler{
		baseHandler: newBaseHandler(),
		companyFlow: companyFlow,
	}
}

// Create handles company creation
// @Summary Create Company
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company fields"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyDTO} "Company created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/companies [post]
func (h *CompanyHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.companyFlow.Create(h.createRequestContext(c, "/api/v1/companies"), &req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create company", "COMPANY_CREATE_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Company created", result)
}

// Get handles single company retrieval
// @Summary Get Company
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyDTO} "Company"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) Get(c fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company ID", "INVALID_COMPANY_ID", nil)
	}

	result, err := h.companyFlow.Get(h.createRequestContext(c, "/api/v1/companies/:id"), companyID)
	if err != nil {
		if businessflow.IsCompanyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load company", "COMPANY_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company retrieved", result)
}

// List handles company listing with filters
// @Summary List Companies
// @Tags Companies
// @Produce json
// @Param industry query string false "Filter by industry"
// @Param search query string false "Free text search"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListCompaniesResponse} "Companies"
// @Router /api/v1/companies [get]
func (h *CompanyHandler) List(c fiber.Ctx) error {
	req := dto.ListCompaniesRequest{}
	req.Page, _ = strconv.Atoi(c.Query("page", "1"))
	req.PageSize, _ = strconv.Atoi(c.Query("page_size", "20"))
	if v := c.Query("industry"); v != "" {
		req.Industry = &v
	}
	if v := c.Query("search"); v != "" {
		req.Search = &v
	}

	result, err := h.companyFlow.List(h.createRequestContext(c, "/api/v1/companies"), &req)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list companies", "COMPANY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Companies retrieved", result)
}

// Update handles company patches
// @Summary Update Company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Fields to patch"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyDTO} "Company updated"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /api/v1/companies/{id} [patch]
func (h *CompanyHandler) Update(c fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company ID", "INVALID_COMPANY_ID", nil)
	}

	var req dto.UpdateCompanyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.CompanyID = companyID

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.companyFlow.Update(h.createRequestContext(c, "/api/v1/companies/:id"), &req, metadata)
	if err != nil {
		if businessflow.IsCompanyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update company", "COMPANY_UPDATE_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company updated", result)
}

// Delete handles company deletion
// @Summary Delete Company
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse "Company deleted"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company ID", "INVALID_COMPANY_ID", nil)
	}

	if err := h.companyFlow.Delete(h.createRequestContext(c, "/api/v1/companies/:id"), companyID); err != nil {
		if businessflow.IsCompanyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete company", "COMPANY_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company deleted", nil)
}
