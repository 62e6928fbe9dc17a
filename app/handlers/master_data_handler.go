package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// MasterDataHandlerInterface defines the contract for master data handlers
type MasterDataHandlerInterface interface {
	GetAll(c fiber.Ctx) error
	CreateCity(c fiber.Ctx) error
	CreateIndustry(c fiber.Ctx) error
	CreateDepartment(c fiber.Ctx) error
	CreateJobLevel(c fiber.Ctx) error
	CreateEmployeeRange(c fiber.Ctx) error
	CreateTurnoverRange(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// MasterDataHandler handles master data HTTP requests
type MasterDataHandler struct {
	baseHandler
	masterDataFlow businessflow.MasterDataFlow
}

// NewMasterDataHandler creates a new master data handler
func NewMasterDataHandler(masterDataFlow businessflow.MasterDataFlow) *MasterDataHandler {
	return &MasterDataHandler{
		baseHandler:    newBaseHandler(),
		masterDataFlow: masterDataFlow,
	}
}

// GetAll returns every master data table in one payload
// @Summary Get Master Data
// @Tags MasterData
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MasterDataResponse} "Master data"
// @Router /api/v1/master-data [get]
func (h *MasterDataHandler) GetAll(c fiber.Ctx) error {
	result, err := h.masterDataFlow.GetAll(h.createRequestContext(c, "/api/v1/master-data"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load master data", "MASTER_DATA_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Master data retrieved", result)
}

// CreateCity adds a city option
// @Summary Create City
// @Tags MasterData
// @Accept json
// @Produce json
// @Param request body dto.CreateCityRequest true "City fields"
// @Success 201 {object} dto.APIResponse{data=dto.CityDTO} "City created"
// @Router /api/v1/master-data/cities [post]
func (h *MasterDataHandler) CreateCity(c fiber.Ctx) error {
	var req dto.CreateCityRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	result, err := h.masterDataFlow.CreateCity(h.createRequestContext(c, "/api/v1/master-data/cities"), &req)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create city", "MASTER_DATA_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "City created", result)
}

// CreateIndustry adds an industry option
// @Summary Create Industry
// @Tags MasterData
// @Accept json
// @Produce json
// @Param request body dto.CreateIndustryRequest true "Industry fields"
// @Success 201 {object} dto.APIResponse{data=dto.IndustryDTO} "Industry created"
// @Router /api/v1/master-data/industries [post]
func (h *MasterDataHandler) CreateIndustry(c fiber.Ctx) error {
	var req dto.CreateIndustryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	result, err := h.masterDataFlow.CreateIndustry(h.createRequestContext(c, "/api/v1/master-data/industries"), &req)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create industry", "MASTER_DATA_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Industry created", result)
}

// CreateDepartment adds a department option
// @Summary Create Department
// @Tags MasterData
// @Accept json
// @Produce json
// @Param request body dto.CreateNamedOptionRequest true "Department name"
// @Success 201 {object} dto.APIResponse{data=dto.NamedOptionDTO} "Department created"
// @Router /api/v1/master-data/departments [post]
func (h *MasterDataHandler) CreateDepartment(c fiber.Ctx) error {
	return h.createNamedOption(c, "/api/v1/master-data/departments", "Department created", h.masterDataFlow.CreateDepartment)
}

// CreateJobLevel adds a job level option
// @Summary Create Job Level
// @Tags MasterData
// @Accept json
// @Produce json
// @Param request body dto.CreateNamedOptionRequest true "Job level name"
// @Success 201 {object} dto.APIResponse{data=dto.NamedOptionDTO} "Job level created"
// @Router /api/v1/master-data/job-levels [post]
func (h *MasterDataHandler) CreateJobLevel(c fiber.Ctx) error {
	return h.createNamedOption(c, "/api/v1/master-data/job-levels", "Job level created", h.masterDataFlow.CreateJobLevel)
}

// CreateEmployeeRange adds an employee range option
// @Summary Create Employee Range
// @Tags MasterData
// @Accept json
// @Produce json
// @Param request body dto.CreateNamedOptionRequest true "Employee range label"
// @Success 201 {object} dto.APIResponse{data=dto.NamedOptionDTO} "Employee range created"
// @Router /api/v1/master-data/employee-ranges [post]
func (h *MasterDataHandler) CreateEmployeeRange(c fiber.Ctx) error {
	return h.createNamedOption(c, "/api/v1/master-data/employee-ranges", "Employee range created", h.masterDataFlow.CreateEmployeeRange)
}

// CreateTurnoverRange adds a turnover range option
// @Summary Create Turnover Range
// @Tags MasterData
// @Accept json
// @Produce json
// @Param request body dto.CreateNamedOptionRequest true "Turnover range label"
// @Success 201 {object} dto.APIResponse{data=dto.NamedOptionDTO} "Turnover range created"
// @Router /api/v1/master-data/turnover-ranges [post]
func (h *MasterDataHandler) CreateTurnoverRange(c fiber.Ctx) error {
	return h.createNamedOption(c, "/api/v1/master-data/turnover-ranges", "Turnover range created", h.masterDataFlow.CreateTurnoverRange)
}

// Delete removes a master data row
// @Summary Delete Master Data Row
// @Tags MasterData
// @Produce json
// @Param table path string true "Master table" Enums(cities, industries, departments, job-levels, employee-ranges, turnover-ranges)
// @Param id path int true "Row ID"
// @Success 200 {object} dto.APIResponse "Row deleted"
// @Failure 404 {object} dto.APIResponse "Row not found"
// @Router /api/v1/master-data/{table}/{id} [delete]
func (h *MasterDataHandler) Delete(c fiber.Ctx) error {
	table := c.Params("table")
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid row ID", "INVALID_REQUEST", nil)
	}

	if err := h.masterDataFlow.Delete(h.createRequestContext(c, "/api/v1/master-data/"+table), table, id); err != nil {
		if businessflow.IsMasterRowNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Master data row not found", "MASTER_DATA_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete master data row", "MASTER_DATA_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Master data row deleted", nil)
}

type namedOptionCreator func(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error)

func (h *MasterDataHandler) createNamedOption(c fiber.Ctx, endpoint, successMessage string, create namedOptionCreator) error {
	var req dto.CreateNamedOptionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	result, err := create(h.createRequestContext(c, endpoint), &req)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create option", "MASTER_DATA_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, successMessage, result)
}
