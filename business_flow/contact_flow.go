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

// ContactFlow handles contact CRUD and listing
type ContactFlow interface {
	Create(ctx context.Context, request *dto.CreateContactRequest, metadata *ClientMetadata) (*dto.ContactDTO, error)
	Get(ctx context.Context, contactID int64) (*dto.ContactDTO, error)
	List(ctx context.Context, request *dto.ListContactsRequest) (*dto.ListContactsResponse, error)
	Update(ctx context.Context, request *dto.UpdateContactRequest, metadata *ClientMetadata) (*dto.ContactDTO, error)
	Delete(ctx context.Context, contactID int64) error
}

// ContactFlowImpl implements the contact business flow
type ContactFlowImpl struct {
	contactRepo repository.ContactRepository
	companyRepo repository.CompanyRepository
	db          *gorm.DB
}

// NewContactFlow creates a new contact flow instance
func NewContactFlow(contactRepo repository.ContactRepository, companyRepo repository.CompanyRepository, db *gorm.DB) ContactFlow {
	return &ContactFlowImpl{
		contactRepo: contactRepo,
		companyRepo: companyRepo,
		db:          db,
	}
}

// checkOfficialEmail enforces uniqueness of the official email, excluding the
// contact being updated
func (cf *ContactFlowImpl) checkOfficialEmail(ctx context.Context, email *string, excludeID int64) error {
	if email == nil || strings.TrimSpace(*email) == "" {
		return nil
	}
	existing, err := cf.contactRepo.ByOfficialEmail(ctx, *email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ContactID != excludeID {
		return ErrDuplicateOfficialEmail
	}
	return nil
}

func (cf *ContactFlowImpl) resolveCompany(ctx context.Context, companyID *int64) error {
	if companyID == nil {
		return nil
	}
	company, err := cf.companyRepo.ByID(ctx, *companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}
	return nil
}

func applyContactFields(contact *models.Contact, request *dto.CreateContactRequest) {
	contact.CompanyID = request.CompanyID
	contact.Salute = request.Salute
	contact.FirstName = request.FirstName
	contact.LastName = request.LastName
	contact.Designation = request.Designation
	contact.Department = request.Department
	contact.JobLevel = request.JobLevel
	contact.Specialization = request.Specialization
	contact.OfficialEmailID = request.OfficialEmailID
	contact.PersonalEmailID = request.PersonalEmailID
	contact.MobileNumber = request.MobileNumber
	contact.DirectPhoneNumber = request.DirectPhoneNumber
	contact.Gender = request.Gender
}

// Create creates a new contact
func (cf *ContactFlowImpl) Create(ctx context.Context, request *dto.CreateContactRequest, metadata *ClientMetadata) (*dto.ContactDTO, error) {
	if err := cf.resolveCompany(ctx, request.CompanyID); err != nil {
		return nil, NewBusinessError("CONTACT_VALIDATION_FAILED", "Company lookup failed", err)
	}
	if err := cf.checkOfficialEmail(ctx, request.OfficialEmailID, 0); err != nil {
		return nil, NewBusinessError("CONTACT_VALIDATION_FAILED", "Official email check failed", err)
	}

	contact := &models.Contact{}
	applyContactFields(contact, request)

	if err := cf.contactRepo.Save(ctx, contact); err != nil {
		return nil, NewBusinessError("CONTACT_CREATE_FAILED", "Failed to create contact", err)
	}

	out := ToContactDTO(*contact)
	return &out, nil
}

// Get returns a single contact
func (cf *ContactFlowImpl) Get(ctx context.Context, contactID int64) (*dto.ContactDTO, error) {
	contact, err := cf.contactRepo.ByID(ctx, contactID)
	if err != nil {
		return nil, NewBusinessError("CONTACT_LOOKUP_FAILED", "Failed to load contact", err)
	}
	if contact == nil {
		return nil, NewBusinessError("CONTACT_NOT_FOUND", "Contact not found", ErrContactNotFound)
	}

	out := ToContactDTO(*contact)
	return &out, nil
}

// List returns a filtered page of contacts
func (cf *ContactFlowImpl) List(ctx context.Context, request *dto.ListContactsRequest) (*dto.ListContactsResponse, error) {
	page := normalizePage(request.Page)
	pageSize := normalizePageSize(request.PageSize)

	filter := models.ContactFilter{
		CompanyID:  request.CompanyID,
		Department: request.Department,
		JobLevel:   request.JobLevel,
		TextSearch: request.Search,
	}

	contacts, err := cf.contactRepo.ByFilter(ctx, filter, "", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("CONTACT_LIST_FAILED", "Failed to list contacts", err)
	}

	total, err := cf.contactRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("CONTACT_LIST_FAILED", "Failed to count contacts", err)
	}

	out := make([]dto.ContactDTO, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, ToContactDTO(*contact))
	}

	return &dto.ListContactsResponse{
		Contacts: out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update patches an existing contact
func (cf *ContactFlowImpl) Update(ctx context.Context, request *dto.UpdateContactRequest, metadata *ClientMetadata) (*dto.ContactDTO, error) {
	contact, err := cf.contactRepo.ByID(ctx, request.ContactID)
	if err != nil {
		return nil, NewBusinessError("CONTACT_LOOKUP_FAILED", "Failed to load contact", err)
	}
	if contact == nil {
		return nil, NewBusinessError("CONTACT_NOT_FOUND", "Contact not found", ErrContactNotFound)
	}

	if err := cf.resolveCompany(ctx, request.CompanyID); err != nil {
		return nil, NewBusinessError("CONTACT_VALIDATION_FAILED", "Company lookup failed", err)
	}
	if err := cf.checkOfficialEmail(ctx, request.OfficialEmailID, contact.ContactID); err != nil {
		return nil, NewBusinessError("CONTACT_VALIDATION_FAILED", "Official email check failed", err)
	}

	applyContactFields(contact, &request.CreateContactRequest)
	contact.UpdatedAt = utils.ToPtr(utils.UTCNow())

	if err := cf.contactRepo.Update(ctx, contact); err != nil {
		return nil, NewBusinessError("CONTACT_UPDATE_FAILED", "Failed to update contact", err)
	}

	out := ToContactDTO(*contact)
	return &out, nil
}

// Delete removes a contact
func (cf *ContactFlowImpl) Delete(ctx context.Context, contactID int64) error {
	contact, err := cf.contactRepo.ByID(ctx, contactID)
	if err != nil {
		return NewBusinessError("CONTACT_LOOKUP_FAILED", "Failed to load contact", err)
	}
	if contact == nil {
		return NewBusinessError("CONTACT_NOT_FOUND", "Contact not found", ErrContactNotFound)
	}

	if err := cf.contactRepo.Delete(ctx, contactID); err != nil {
		return NewBusinessError("CONTACT_DELETE_FAILED", "Failed to delete contact", err)
	}
	return nil
}
