package businessflow

import (
	"context"
	"strings"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"gorm.io/gorm"
)

// CompanyFlow handles company CRUD and listing
type CompanyFlow interface {
	Create(ctx context.Context, request *dto.CreateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error)
	Get(ctx context.Context, companyID int64) (*dto.CompanyDTO, error)
	List(ctx context.Context, request *dto.ListCompaniesRequest) (*dto.ListCompaniesResponse, error)
	Update(ctx context.Context, request *dto.UpdateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error)
	Delete(ctx context.Context, companyID int64) error
}

// CompanyFlowImpl implements the company business flow
type CompanyFlowImpl struct {
	companyRepo repository.CompanyRepository
	db          *gorm.DB
}

// NewCompanyFlow creates a new company flow instance
func NewCompanyFlow(companyRepo repository.CompanyRepository, db *gorm.DB) CompanyFlow {
	return &CompanyFlowImpl{
		companyRepo: companyRepo,
		db:          db,
	}
}

func applyCompanyFields(company *models.Company, request *dto.CreateCompanyRequest) {
	company.CompanyName = utils.TrimToNil(request.CompanyName)
	company.Industry = request.Industry
	company.Headquarters = request.Headquarters
	company.AddressType = request.AddressType
	company.PostalAddress1 = request.PostalAddress1
	company.PostalAddress2 = request.PostalAddress2
	company.PostalAddress3 = request.PostalAddress3
	company.STD = request.STD
	company.Phone1 = request.Phone1
	company.Phone2 = request.Phone2
	company.Fax = request.Fax
	company.CompanyMobileNumber = request.CompanyMobileNumber
	company.CommonEmailID = request.CommonEmailID
	company.Website = request.Website
	company.NoOfEmployeesTotal = request.NoOfEmployeesTotal
	company.TurnoverINRCr = request.TurnoverINRCr
	company.NoOfOfficesTotal = request.NoOfOfficesTotal
	company.NoOfBranchOffices = request.NoOfBranchOffices
}

// Create creates a new company
func (cpf *CompanyFlowImpl) Create(ctx context.Context, request *dto.CreateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error) {
	if strings.TrimSpace(request.CompanyName) == "" {
		return nil, NewBusinessError("COMPANY_VALIDATION_FAILED", "Company name is required", ErrCompanyNameRequired)
	}

	company := &models.Company{}
	applyCompanyFields(company, request)

	if err := cpf.companyRepo.Save(ctx, company); err != nil {
		return nil, NewBusinessError("COMPANY_CREATE_FAILED", "Failed to create company", err)
	}

	out := ToCompanyDTO(*company)
	return &out, nil
}

// Get returns a single company
func (cpf *CompanyFlowImpl) Get(ctx context.Context, companyID int64) (*dto.CompanyDTO, error) {
	company, err := cpf.companyRepo.ByID(ctx, companyID)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to load company", err)
	}
	if company == nil {
		return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	out := ToCompanyDTO(*company)
	return &out, nil
}

// List returns a filtered page of companies
func (cpf *CompanyFlowImpl) List(ctx context.Context, request *dto.ListCompaniesRequest) (*dto.ListCompaniesResponse, error) {
	page := normalizePage(request.Page)
	pageSize := normalizePageSize(request.PageSize)

	filter := models.CompanyFilter{
		Industry:   request.Industry,
		TextSearch: request.Search,
	}

	companies, err := cpf.companyRepo.ByFilter(ctx, filter, "", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}

	total, err := cpf.companyRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to count companies", err)
	}

	out := make([]dto.CompanyDTO, 0, len(companies))
	for _, company := range companies {
		out = append(out, ToCompanyDTO(*company))
	}

	return &dto.ListCompaniesResponse{
		Companies: out,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update patches an existing company
func (cpf *CompanyFlowImpl) Update(ctx context.Context, request *dto.UpdateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error) {
	company, err := cpf.companyRepo.ByID(ctx, request.CompanyID)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to load company", err)
	}
	if company == nil {
		return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	if strings.TrimSpace(request.CompanyName) == "" {
		return nil, NewBusinessError("COMPANY_VALIDATION_FAILED", "Company name is required", ErrCompanyNameRequired)
	}

	applyCompanyFields(company, &request.CreateCompanyRequest)
	company.UpdatedAt = utils.ToPtr(utils.UTCNow())

	if err := cpf.companyRepo.Update(ctx, company); err != nil {
		return nil, NewBusinessError("COMPANY_UPDATE_FAILED", "Failed to update company", err)
	}

	out := ToCompanyDTO(*company)
	return &out, nil
}

// Delete removes a company
func (cpf *CompanyFlowImpl) Delete(ctx context.Context, companyID int64) error {
	company, err := cpf.companyRepo.ByID(ctx, companyID)
	if err != nil {
		return NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to load company", err)
	}
	if company == nil {
		return NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	if err := cpf.companyRepo.Delete(ctx, companyID); err != nil {
		return NewBusinessError("COMPANY_DELETE_FAILED", "Failed to delete company", err)
	}
	return nil
}
