// Package businessflow contains the core business logic and use cases for the lead console
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// User-related errors
	ErrUserNotFound             = errors.New("user not found")
	ErrAccountInactive          = errors.New("account is inactive")
	ErrIncorrectPassword        = errors.New("incorrect password")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrUserUpdateFieldsRequired = errors.New("at least one field must be provided for update")

	// Audience-related errors
	ErrAudienceQueryFailed     = errors.New("audience query failed")
	ErrAudienceBuildFailed     = errors.New("audience build failed")
	ErrRunNotFound             = errors.New("audience run not found")
	ErrRunNotSaved             = errors.New("audience run was not saved")
	ErrRunMetadataSaveFailed   = errors.New("failed to save run metadata")
	ErrRunUpdateFieldsRequired = errors.New("at least one field must be provided for update")

	// Allocation-related errors
	ErrOverAllocation        = errors.New("requested allocation exceeds remaining run results")
	ErrAllocationWriteFailed = errors.New("failed to write allocation")
	ErrAllocationLimit       = errors.New("allocation limit must be positive")
	ErrFileNameRequired      = errors.New("file name is required")

	// Campaign-related errors
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrCampaignNameRequired = errors.New("campaign name is required")
	ErrCampaignDateOrder    = errors.New("campaign end date is before start date")

	// Contact and company errors
	ErrContactNotFound        = errors.New("contact not found")
	ErrCompanyNotFound        = errors.New("company not found")
	ErrCompanyNameRequired    = errors.New("company name is required")
	ErrDuplicateOfficialEmail = errors.New("official email already exists")

	// Master data errors
	ErrMasterRowNotFound = errors.New("master data row not found")

	// Bulk upload errors
	ErrUploadFileEmpty    = errors.New("uploaded file is empty")
	ErrUploadFileInvalid  = errors.New("uploaded file is not a valid spreadsheet")
	ErrUploadSheetMissing = errors.New("uploaded file has no data sheet")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsUserNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsRunNotFound(err error) bool {
	return errors.Is(err, ErrRunNotFound)
}

func IsOverAllocation(err error) bool {
	return errors.Is(err, ErrOverAllocation)
}

func IsCampaignNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound)
}

func IsContactNotFound(err error) bool {
	return errors.Is(err, ErrContactNotFound)
}

func IsCompanyNotFound(err error) bool {
	return errors.Is(err, ErrCompanyNotFound)
}

func IsDuplicateOfficialEmail(err error) bool {
	return errors.Is(err, ErrDuplicateOfficialEmail)
}

func IsRunNotSaved(err error) bool {
	return errors.Is(err, ErrRunNotSaved)
}

func IsEmailAlreadyExists(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists)
}

func IsMasterRowNotFound(err error) bool {
	return errors.Is(err, ErrMasterRowNotFound)
}

func IsUploadFileEmpty(err error) bool {
	return errors.Is(err, ErrUploadFileEmpty)
}

func IsUploadFileInvalid(err error) bool {
	return errors.Is(err, ErrUploadFileInvalid)
}

func IsUploadSheetMissing(err error) bool {
	return errors.Is(err, ErrUploadSheetMissing)
}
