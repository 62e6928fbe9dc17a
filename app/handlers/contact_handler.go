package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
	"github.com/prospectra/lead-console/models"
)

// ContactHandlerInterface defines the contract for contact handlers
type ContactHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
	BulkUpload(c fiber.Ctx) error
	DownloadTemplate(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	baseHandler
	contactFlow businessflow.ContactFlow
	uploadFlow  businessflow.BulkUploadFlow
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactFlow businessflow.ContactFlow, uploadFlow businessflow.BulkUploadFlow) *ContactHandler {
	return &ContactHandler{
		baseHandler: newBaseHandler(),
		contactFlow: contactFlow,
		uploadFlow:  uploadFlow,
	}
}

// Create handles contact creation
// @Summary Create Contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact fields"
// @Success 201 {object} dto.APIResponse{data=dto.ContactDTO} "Contact created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Duplicate official email"
// @Router /api/v1/contacts [post]
func (h *ContactHandler) Create(c fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.contactFlow.Create(h.createRequestContext(c, "/api/v1/contacts"), &req, metadata)
	if err != nil {
		switch {
		case businessflow.IsDuplicateOfficialEmail(err):
			return h.ErrorResponse(c, fiber.StatusConflict, "Official email already exists", "DUPLICATE_EMAIL", nil)
		case businessflow.IsCompanyNotFound(err):
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Referenced company does not exist", "COMPANY_NOT_FOUND", nil)
		default:
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create contact", "CONTACT_CREATE_FAILED", nil)
		}
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Contact created", result)
}

// Get handles single contact retrieval
// @Summary Get Contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContactDTO} "Contact"
// @Failure 404 {object} dto.APIResponse "Contact not found"
// @Router /api/v1/contacts/{id} [get]
func (h *ContactHandler) Get(c fiber.Ctx) error {
	contactID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact ID", "INVALID_CONTACT_ID", nil)
	}

	result, err := h.contactFlow.Get(h.createRequestContext(c, "/api/v1/contacts/:id"), contactID)
	if err != nil {
		if businessflow.IsContactNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "CONTACT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load contact", "CONTACT_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Contact retrieved", result)
}

// List handles contact listing with filters
// @Summary List Contacts
// @Tags Contacts
// @Produce json
// @Param company_id query int false "Filter by company"
// @Param department query string false "Filter by department"
// @Param job_level query string false "Filter by job level"
// @Param search query string false "Free text search"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListContactsResponse} "Contacts"
// @Router /api/v1/contacts [get]
func (h *ContactHandler) List(c fiber.Ctx) error {
	req := dto.ListContactsRequest{}
	req.Page, _ = strconv.Atoi(c.Query("page", "1"))
	req.PageSize, _ = strconv.Atoi(c.Query("page_size", "20"))
	if v := c.Query("company_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.CompanyID = &id
		}
	}
	if v := c.Query("department"); v != "" {
		req.Department = &v
	}
	if v := c.Query("job_level"); v != "" {
		req.JobLevel = &v
	}
	if v := c.Query("search"); v != "" {
		req.Search = &v
	}

	result, err := h.contactFlow.List(h.createRequestContext(c, "/api/v1/contacts"), &req)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list contacts", "CONTACT_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Contacts retrieved", result)
}

// Update handles contact patches
// @Summary Update Contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Fields to patch"
// @Success 200 {object} dto.APIResponse{data=dto.ContactDTO} "Contact updated"
// @Failure 404 {object} dto.APIResponse "Contact not found"
// @Failure 409 {object} dto.APIResponse "Duplicate official email"
// @Router /api/v1/contacts/{id} [patch]
func (h *ContactHandler) Update(c fiber.Ctx) error {
	contactID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact ID", "INVALID_CONTACT_ID", nil)
	}

	var req dto.UpdateContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.ContactID = contactID

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.contactFlow.Update(h.createRequestContext(c, "/api/v1/contacts/:id"), &req, metadata)
	if err != nil {
		switch {
		case businessflow.IsContactNotFound(err):
			return h.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "CONTACT_NOT_FOUND", nil)
		case businessflow.IsDuplicateOfficialEmail(err):
			return h.ErrorResponse(c, fiber.StatusConflict, "Official email already exists", "DUPLICATE_EMAIL", nil)
		case businessflow.IsCompanyNotFound(err):
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Referenced company does not exist", "COMPANY_NOT_FOUND", nil)
		default:
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update contact", "CONTACT_UPDATE_FAILED", nil)
		}
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Contact updated", result)
}

// Delete handles contact deletion
// @Summary Delete Contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse "Contact deleted"
// @Failure 404 {object} dto.APIResponse "Contact not found"
// @Router /api/v1/contacts/{id} [delete]
func (h *ContactHandler) Delete(c fiber.Ctx) error {
	contactID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact ID", "INVALID_CONTACT_ID", nil)
	}

	if err := h.contactFlow.Delete(h.createRequestContext(c, "/api/v1/contacts/:id"), contactID); err != nil {
		if businessflow.IsContactNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "CONTACT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete contact", "CONTACT_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Contact deleted", nil)
}

// BulkUpload handles xlsx contact imports
// @Summary Bulk Upload Contacts
// @Tags Contacts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx file"
// @Success 200 {object} dto.APIResponse{data=dto.BulkUploadResponse} "Upload report"
// @Failure 400 {object} dto.APIResponse "Invalid upload"
// @Router /api/v1/contacts/bulk-upload [post]
func (h *ContactHandler) BulkUpload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Upload file is required", "FILE_REQUIRED", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to open upload file", "FILE_OPEN_FAILED", nil)
	}
	defer file.Close()

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.uploadFlow.UploadContacts(h.createRequestContext(c, "/api/v1/contacts/bulk-upload"), file, metadata)
	if err != nil {
		switch {
		case businessflow.IsUploadFileEmpty(err), businessflow.IsUploadFileInvalid(err), businessflow.IsUploadSheetMissing(err):
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid upload file", "UPLOAD_INVALID", err.Error())
		default:
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process upload", "UPLOAD_FAILED", nil)
		}
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Upload processed", result)
}

// DownloadTemplate serves the xlsx import template
// @Summary Download Upload Template
// @Tags Contacts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Template file"
// @Router /api/v1/contacts/bulk-upload/template [get]
func (h *ContactHandler) DownloadTemplate(c fiber.Ctx) error {
	data, err := h.uploadFlow.BuildTemplate()
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build template", "TEMPLATE_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contact_upload_template.xlsx"`)
	return c.Send(data)
}

// Export serves a filtered contact export as xlsx
// @Summary Export Contacts
// @Tags Contacts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company_id query int false "Filter by company"
// @Param department query string false "Filter by department"
// @Param job_level query string false "Filter by job level"
// @Param search query string false "Free text search"
// @Success 200 {file} binary "Export file"
// @Router /api/v1/contacts/export [get]
func (h *ContactHandler) Export(c fiber.Ctx) error {
	filter := models.ContactFilter{}
	if v := c.Query("company_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CompanyID = &id
		}
	}
	if v := c.Query("department"); v != "" {
		filter.Department = &v
	}
	if v := c.Query("job_level"); v != "" {
		filter.JobLevel = &v
	}
	if v := c.Query("search"); v != "" {
		filter.TextSearch = &v
	}

	data, err := h.uploadFlow.ExportContacts(h.createRequestContext(c, "/api/v1/contacts/export"), filter)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export contacts", "EXPORT_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contacts_export.xlsx"`)
	return c.Send(data)
}
