package models

import (
	"time"
)

// Company represents a row of the organisation_master table
// The postal/phone columns mirror the bulk-upload template so imported rows
// round-trip without mapping loss
type Company struct {
	CompanyID     int64    `gorm:"column:company_id;primaryKey;autoIncrement;type:bigserial" json:"company_id"`
	CompanyName   *string  `gorm:"size:255;index:idx_organisation_master_company_name" json:"company_name,omitempty"`
	Industry      *string  `gorm:"size:255;index:idx_organisation_master_industry" json:"industry,omitempty"`
	Headquarters  *string  `gorm:"size:255" json:"headquarters,omitempty"`
	Employees     *int     `json:"employees,omitempty"`
	AnnualRevenue *float64 `json:"annual_revenue,omitempty"`

	AddressType    *string `gorm:"size:50" json:"address_type,omitempty"`
	PostalAddress1 *string `gorm:"size:255" json:"postal_address_1,omitempty"`
	PostalAddress2 *string `gorm:"size:255" json:"postal_address_2,omitempty"`
	PostalAddress3 *string `gorm:"size:255" json:"postal_address_3,omitempty"`

	STD                 *string  `gorm:"column:std;size:20" json:"std,omitempty"`
	Phone1              *string  `gorm:"column:phone_1;size:30" json:"phone_1,omitempty"`
	Phone2              *string  `gorm:"column:phone_2;size:30" json:"phone_2,omitempty"`
	Fax                 *string  `gorm:"size:30" json:"fax,omitempty"`
	CompanyMobileNumber *string  `gorm:"size:30" json:"company_mobile_number,omitempty"`
	CommonEmailID       *string  `gorm:"size:255" json:"common_email_id,omitempty"`
	Website             *string  `gorm:"size:255" json:"website,omitempty"`
	NoOfEmployeesTotal  *int     `gorm:"column:no_of_employees_total" json:"no_of_employees_total,omitempty"`
	TurnoverINRCr       *float64 `gorm:"column:turn_over_inr_cr" json:"turn_over_inr_cr,omitempty"`
	NoOfOfficesTotal    *int     `gorm:"column:no_of_offices_total" json:"no_of_offices_total,omitempty"`
	NoOfBranchOffices   *int     `gorm:"column:no_of_branch_offices" json:"no_of_branch_offices,omitempty"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (Company) TableName() string { return "organisation_master" }

// CompanyFilter represents filter criteria for company queries
type CompanyFilter struct {
	CompanyID     *int64
	CompanyName   *string
	Industry      *string
	EmployeeMin   *int
	EmployeeMax   *int
	TextSearch    *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
