package models

// Reference master-data tables backing the console dropdowns. Single-table
// rows with no business logic; lifecycle is plain insert/delete.

// City represents a row of the city_master table
type City struct {
	CityID  int64   `gorm:"column:city_id;primaryKey;autoIncrement;type:bigserial" json:"city_id"`
	City    *string `gorm:"size:100" json:"city,omitempty"`
	State   *string `gorm:"size:100" json:"state,omitempty"`
	Region  *string `gorm:"size:100" json:"region,omitempty"`
	Country *string `gorm:"size:100" json:"country,omitempty"`
	Pincode *string `gorm:"size:20" json:"pincode,omitempty"`
}

func (City) TableName() string { return "city_master" }

// Industry represents a row of the industry_master table
type Industry struct {
	IndustryID       int64   `gorm:"column:industry_id;primaryKey;autoIncrement;type:bigserial" json:"industry_id"`
	IndustryVertical *string `gorm:"size:255" json:"industry_vertical,omitempty"`
	SubVertical      *string `gorm:"size:255" json:"sub_vertical,omitempty"`
}

func (Industry) TableName() string { return "industry_master" }

// Department represents a row of the department_master table
type Department struct {
	ID             int64  `gorm:"primaryKey;autoIncrement;type:bigserial" json:"id"`
	DepartmentName string `gorm:"size:100;not null" json:"department_name"`
}

func (Department) TableName() string { return "department_master" }

// JobLevel represents a row of the job_level_master table
type JobLevel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;type:bigserial" json:"id"`
	JobLevelName string `gorm:"size:100;not null" json:"job_level_name"`
}

func (JobLevel) TableName() string { return "job_level_master" }

// EmployeeRange represents a row of the emp_range_master table
type EmployeeRange struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;type:bigserial" json:"id"`
	EmployeeRange string `gorm:"size:100;not null" json:"employee_range"`
}

func (EmployeeRange) TableName() string { return "emp_range_master" }

// TurnoverRange represents a row of the comp_turnover_master table
type TurnoverRange struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;type:bigserial" json:"id"`
	TurnoverRange string `gorm:"size:100;not null" json:"turnover_range"`
}

func (TurnoverRange) TableName() string { return "comp_turnover_master" }
