package dto

// CityDTO represents a city master row
type CityDTO struct {
	CityID  int64   `json:"city_id" example:"12"`
	City    *string `json:"city,omitempty" example:"Pune"`
	State   *string `json:"state,omitempty" example:"Maharashtra"`
	Region  *string `json:"region,omitempty" example:"West"`
	Country *string `json:"country,omitempty" example:"India"`
	Pincode *string `json:"pincode,omitempty" example:"411001"`
}

// IndustryDTO represents an industry master row
type IndustryDTO struct {
	IndustryID       int64   `json:"industry_id" example:"3"`
	IndustryVertical *string `json:"industry_vertical,omitempty" example:"BFSI"`
	SubVertical      *string `json:"sub_vertical,omitempty" example:"Retail Banking"`
}

// NamedOptionDTO represents a simple id/name master row
type NamedOptionDTO struct {
	ID   int64  `json:"id" example:"4"`
	Name string `json:"name" example:"Finance"`
}

// MasterDataResponse bundles every dropdown source in one payload
type MasterDataResponse struct {
	Cities         []CityDTO        `json:"cities"`
	Industries     []IndustryDTO    `json:"industries"`
	Departments    []NamedOptionDTO `json:"departments"`
	JobLevels      []NamedOptionDTO `json:"job_levels"`
	EmployeeRanges []NamedOptionDTO `json:"employee_ranges"`
	TurnoverRanges []NamedOptionDTO `json:"turnover_ranges"`
}

// CreateCityRequest represents the request to add a city
type CreateCityRequest struct {
	City    string  `json:"city" validate:"required,min=1,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Region  *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Pincode *string `json:"pincode,omitempty" validate:"omitempty,max=20"`
}

// CreateIndustryRequest represents the request to add an industry
type CreateIndustryRequest struct {
	IndustryVertical string  `json:"industry_vertical" validate:"required,min=1,max=255"`
	SubVertical      *string `json:"sub_vertical,omitempty" validate:"omitempty,max=255"`
}

// CreateNamedOptionRequest represents the request to add a simple named master row
type CreateNamedOptionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
