package businessflow

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/config"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// MasterDataFlow serves the dropdown sources of the console and their
// maintenance operations
type MasterDataFlow interface {
	GetAll(ctx context.Context) (*dto.MasterDataResponse, error)
	CreateCity(ctx context.Context, request *dto.CreateCityRequest) (*dto.CityDTO, error)
	CreateIndustry(ctx context.Context, request *dto.CreateIndustryRequest) (*dto.IndustryDTO, error)
	CreateDepartment(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error)
	CreateJobLevel(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error)
	CreateEmployeeRange(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error)
	CreateTurnoverRange(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error)
	Delete(ctx context.Context, table string, id int64) error
}

// MasterDataFlowImpl implements the master data business flow with a
// cache-aside layer over redis
type MasterDataFlowImpl struct {
	masterRepo  repository.MasterDataRepository
	rc          *redis.Client
	cacheConfig *config.CacheConfig
}

// NewMasterDataFlow creates a new master data flow instance
func NewMasterDataFlow(masterRepo repository.MasterDataRepository, rc *redis.Client, cacheConfig *config.CacheConfig) MasterDataFlow {
	return &MasterDataFlowImpl{
		masterRepo:  masterRepo,
		rc:          rc,
		cacheConfig: cacheConfig,
	}
}

// GetAll returns every dropdown source in one payload, cached in redis until
// a master row changes
func (mf *MasterDataFlowImpl) GetAll(ctx context.Context) (*dto.MasterDataResponse, error) {
	cacheKey := redisKey(*mf.cacheConfig, utils.MasterDataCacheKey)

	if mf.rc != nil {
		if bs, err := mf.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			var out dto.MasterDataResponse
			if err := json.Unmarshal(bs, &out); err == nil {
				return &out, nil
			}
		}
	}

	cities, err := mf.masterRepo.ListCities(ctx)
	if err != nil {
		return nil, NewBusinessError("MASTER_DATA_FAILED", "Failed to load cities", err)
	}
	industries, err := mf.masterRepo.ListIndustries(ctx)
	if err != nil {
		return nil, NewBusinessError("MASTER_DATA_FAILED", "Failed to load industries", err)
	}
	departments, err := mf.masterRepo.ListDepartments(ctx)
	if err != nil {
		return nil, NewBusinessError("MASTER_DATA_FAILED", "Failed to load departments", err)
	}
	jobLevels, err := mf.masterRepo.ListJobLevels(ctx)
	if err != nil {
		return nil, NewBusinessError("MASTER_DATA_FAILED", "Failed to load job levels", err)
	}
	employeeRanges, err := mf.masterRepo.ListEmployeeRanges(ctx)
	if err != nil {
		return nil, NewBusinessError("MASTER_DATA_FAILED", "Failed to load employee ranges", err)
	}
	turnoverRanges, err := mf.masterRepo.ListTurnoverRanges(ctx)
	if err != nil {
		return nil, NewBusinessError("MASTER_DATA_FAILED", "Failed to load turnover ranges", err)
	}

	out := &dto.MasterDataResponse{
		Cities:         make([]dto.CityDTO, 0, len(cities)),
		Industries:     make([]dto.IndustryDTO, 0, len(industries)),
		Departments:    make([]dto.NamedOptionDTO, 0, len(departments)),
		JobLevels:      make([]dto.NamedOptionDTO, 0, len(jobLevels)),
		EmployeeRanges: make([]dto.NamedOptionDTO, 0, len(employeeRanges)),
		TurnoverRanges: make([]dto.NamedOptionDTO, 0, len(turnoverRanges)),
	}
	for _, c := range cities {
		out.Cities = append(out.Cities, toCityDTO(*c))
	}
	for _, i := range industries {
		out.Industries = append(out.Industries, toIndustryDTO(*i))
	}
	for _, d := range departments {
		out.Departments = append(out.Departments, dto.NamedOptionDTO{ID: d.ID, Name: d.DepartmentName})
	}
	for _, j := range jobLevels {
		out.JobLevels = append(out.JobLevels, dto.NamedOptionDTO{ID: j.ID, Name: j.JobLevelName})
	}
	for _, e := range employeeRanges {
		out.EmployeeRanges = append(out.EmployeeRanges, dto.NamedOptionDTO{ID: e.ID, Name: e.EmployeeRange})
	}
	for _, t := range turnoverRanges {
		out.TurnoverRanges = append(out.TurnoverRanges, dto.NamedOptionDTO{ID: t.ID, Name: t.TurnoverRange})
	}

	if mf.rc != nil {
		if bs, err := json.Marshal(out); err == nil {
			_ = mf.rc.Set(ctx, cacheKey, bs, mf.cacheConfig.DefaultTTL).Err()
		}
	}

	return out, nil
}

// invalidate drops the cached dropdown payload after a write
func (mf *MasterDataFlowImpl) invalidate(ctx context.Context) {
	if mf.rc == nil {
		return
	}
	_ = mf.rc.Del(ctx, redisKey(*mf.cacheConfig, utils.MasterDataCacheKey)).Err()
}

func toCityDTO(c models.City) dto.CityDTO {
	return dto.CityDTO{
		CityID:  c.CityID,
		City:    c.City,
		State:   c.State,
		Region:  c.Region,
		Country: c.Country,
		Pincode: c.Pincode,
	}
}

func toIndustryDTO(i models.Industry) dto.IndustryDTO {
	return dto.IndustryDTO{
		IndustryID:       i.IndustryID,
		IndustryVertical: i.IndustryVertical,
		SubVertical:      i.SubVertical,
	}
}

// CreateCity adds a city master row
func (mf *MasterDataFlowImpl) CreateCity(ctx context.Context, request *dto.CreateCityRequest) (*dto.CityDTO, error) {
	city := &models.City{
		City:    utils.TrimToNil(request.City),
		State:   request.State,
		Region:  request.Region,
		Country: request.Country,
		Pincode: request.Pincode,
	}
	if err := mf.masterRepo.SaveCity(ctx, city); err != nil {
		return nil, NewBusinessError("MASTER_DATA_CREATE_FAILED", "Failed to create city", err)
	}
	mf.invalidate(ctx)
	out := toCityDTO(*city)
	return &out, nil
}

// CreateIndustry adds an industry master row
func (mf *MasterDataFlowImpl) CreateIndustry(ctx context.Context, request *dto.CreateIndustryRequest) (*dto.IndustryDTO, error) {
	industry := &models.Industry{
		IndustryVertical: utils.TrimToNil(request.IndustryVertical),
		SubVertical:      request.SubVertical,
	}
	if err := mf.masterRepo.SaveIndustry(ctx, industry); err != nil {
		return nil, NewBusinessError("MASTER_DATA_CREATE_FAILED", "Failed to create industry", err)
	}
	mf.invalidate(ctx)
	out := toIndustryDTO(*industry)
	return &out, nil
}

// CreateDepartment adds a department master row
func (mf *MasterDataFlowImpl) CreateDepartment(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error) {
	department := &models.Department{DepartmentName: request.Name}
	if err := mf.masterRepo.SaveDepartment(ctx, department); err != nil {
		return nil, NewBusinessError("MASTER_DATA_CREATE_FAILED", "Failed to create department", err)
	}
	mf.invalidate(ctx)
	return &dto.NamedOptionDTO{ID: department.ID, Name: department.DepartmentName}, nil
}

// CreateJobLevel adds a job level master row
func (mf *MasterDataFlowImpl) CreateJobLevel(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error) {
	level := &models.JobLevel{JobLevelName: request.Name}
	if err := mf.masterRepo.SaveJobLevel(ctx, level); err != nil {
		return nil, NewBusinessError("MASTER_DATA_CREATE_FAILED", "Failed to create job level", err)
	}
	mf.invalidate(ctx)
	return &dto.NamedOptionDTO{ID: level.ID, Name: level.JobLevelName}, nil
}

// CreateEmployeeRange adds an employee range master row
func (mf *MasterDataFlowImpl) CreateEmployeeRange(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error) {
	rng := &models.EmployeeRange{EmployeeRange: request.Name}
	if err := mf.masterRepo.SaveEmployeeRange(ctx, rng); err != nil {
		return nil, NewBusinessError("MASTER_DATA_CREATE_FAILED", "Failed to create employee range", err)
	}
	mf.invalidate(ctx)
	return &dto.NamedOptionDTO{ID: rng.ID, Name: rng.EmployeeRange}, nil
}

// CreateTurnoverRange adds a turnover range master row
func (mf *MasterDataFlowImpl) CreateTurnoverRange(ctx context.Context, request *dto.CreateNamedOptionRequest) (*dto.NamedOptionDTO, error) {
	rng := &models.TurnoverRange{TurnoverRange: request.Name}
	if err := mf.masterRepo.SaveTurnoverRange(ctx, rng); err != nil {
		return nil, NewBusinessError("MASTER_DATA_CREATE_FAILED", "Failed to create turnover range", err)
	}
	mf.invalidate(ctx)
	return &dto.NamedOptionDTO{ID: rng.ID, Name: rng.TurnoverRange}, nil
}

// Delete removes a master row from the named table
func (mf *MasterDataFlowImpl) Delete(ctx context.Context, table string, id int64) error {
	var err error
	switch table {
	case "cities":
		err = mf.masterRepo.DeleteCity(ctx, id)
	case "industries":
		err = mf.masterRepo.DeleteIndustry(ctx, id)
	case "departments":
		err = mf.masterRepo.DeleteDepartment(ctx, id)
	case "job-levels":
		err = mf.masterRepo.DeleteJobLevel(ctx, id)
	case "employee-ranges":
		err = mf.masterRepo.DeleteEmployeeRange(ctx, id)
	case "turnover-ranges":
		err = mf.masterRepo.DeleteTurnoverRange(ctx, id)
	default:
		return NewBusinessError("MASTER_DATA_NOT_FOUND", "Unknown master data table", ErrMasterRowNotFound)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewBusinessError("MASTER_DATA_NOT_FOUND", "Master data row not found", ErrMasterRowNotFound)
	}
	if err != nil {
		return NewBusinessError("MASTER_DATA_DELETE_FAILED", "Failed to delete master data row", err)
	}
	mf.invalidate(ctx)
	return nil
}
