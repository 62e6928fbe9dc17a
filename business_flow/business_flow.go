// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/config"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for audit logging
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// redisKey prefixes a cache key with the configured namespace
func redisKey(cfg config.CacheConfig, key string) string {
	if cfg.RedisPrefix == "" {
		return key
	}
	return cfg.RedisPrefix + ":" + key
}

// ToAudienceRowDTO converts a canonical result row to its response shape
func ToAudienceRowDTO(row models.AudienceResultRow) dto.AudienceRowDTO {
	return dto.AudienceRowDTO{
		ContactID:   row.ContactID,
		CompanyID:   row.CompanyID,
		CompanyName: row.CompanyName,
		Name:        row.DisplayName(),
		Email:       row.Email,
		Phone:       row.Phone,
		City:        row.City,
		State:       row.State,
		Industry:    row.Industry,
		JobLevel:    row.JobLevel,
		Department:  row.Department,
	}
}

// ToAudienceRowDTOs converts a slice of canonical result rows
func ToAudienceRowDTOs(rows []models.AudienceResultRow) []dto.AudienceRowDTO {
	out := make([]dto.AudienceRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToAudienceRowDTO(row))
	}
	return out
}

// ToAudienceRunDTO converts an audience run model to its response shape
func ToAudienceRunDTO(run models.AudienceRun) dto.AudienceRunDTO {
	updatedAt := run.CreatedAt
	if run.UpdatedAt != nil {
		updatedAt = *run.UpdatedAt
	}
	return dto.AudienceRunDTO{
		ID:           run.ID.String(),
		Name:         run.Name,
		Notes:        run.Notes,
		Filters:      map[string]any(run.Filters),
		Status:       run.Status.String(),
		TotalResults: run.TotalResults,
		CreatedAt:    run.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    updatedAt.Format(time.RFC3339),
	}
}

// ToCampaignDTO converts a campaign model to its response shape
func ToCampaignDTO(campaign models.Campaign) dto.CampaignDTO {
	listSize := int64(campaign.ListSize)
	return dto.CampaignDTO{
		ID:            campaign.ID.String(),
		Name:          campaign.Name,
		ClientName:    utils.TrimToNil(campaign.ClientName),
		ServicingLead: utils.TrimToNil(campaign.ServicingLead),
		StartDate:     utils.ToPtr(campaign.StartDate.Format("2006-01-02")),
		EndDate:       utils.ToPtr(campaign.EndDate.Format("2006-01-02")),
		ListSize:      &listSize,
		CreatedAt:     campaign.CreatedAt.Format(time.RFC3339),
	}
}

// ToContactDTO converts a contact model to its response shape
func ToContactDTO(contact models.Contact) dto.ContactDTO {
	companyName := ""
	if contact.Company != nil && contact.Company.CompanyName != nil {
		companyName = *contact.Company.CompanyName
	}
	return dto.ContactDTO{
		ContactID:         contact.ContactID,
		CompanyID:         contact.CompanyID,
		CompanyName:       companyName,
		Salute:            contact.Salute,
		FirstName:         contact.FirstName,
		LastName:          contact.LastName,
		Designation:       contact.Designation,
		Department:        contact.Department,
		JobLevel:          contact.JobLevel,
		Specialization:    contact.Specialization,
		OfficialEmailID:   contact.OfficialEmailID,
		PersonalEmailID:   contact.PersonalEmailID,
		MobileNumber:      contact.MobileNumber,
		DirectPhoneNumber: contact.DirectPhoneNumber,
		Gender:            contact.Gender,
		CreatedAt:         contact.CreatedAt.Format(time.RFC3339),
	}
}

// ToCompanyDTO converts a company model to its response shape
func ToCompanyDTO(company models.Company) dto.CompanyDTO {
	return dto.CompanyDTO{
		CompanyID:           company.CompanyID,
		CompanyName:         company.CompanyName,
		Industry:            company.Industry,
		Headquarters:        company.Headquarters,
		Website:             company.Website,
		CommonEmailID:       company.CommonEmailID,
		CompanyMobileNumber: company.CompanyMobileNumber,
		NoOfEmployeesTotal:  company.NoOfEmployeesTotal,
		TurnoverINRCr:       company.TurnoverINRCr,
		CreatedAt:           company.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserInfo converts a user model to its response shape
func ToUserInfo(user models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
