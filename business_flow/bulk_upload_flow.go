package businessflow

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BulkUploadFlow handles spreadsheet imports and exports of the contact base
type BulkUploadFlow interface {
	UploadContacts(ctx context.Context, reader io.Reader, metadata *ClientMetadata) (*dto.BulkUploadResponse, error)
	BuildTemplate() ([]byte, error)
	ExportContacts(ctx context.Context, filter models.ContactFilter) ([]byte, error)
}

// BulkUploadFlowImpl implements the bulk upload business flow
type BulkUploadFlowImpl struct {
	contactRepo repository.ContactRepository
	companyRepo repository.CompanyRepository
	db          *gorm.DB
}

// NewBulkUploadFlow creates a new bulk upload flow instance
func NewBulkUploadFlow(contactRepo repository.ContactRepository, companyRepo repository.CompanyRepository, db *gorm.DB) BulkUploadFlow {
	return &BulkUploadFlowImpl{
		contactRepo: contactRepo,
		companyRepo: companyRepo,
		db:          db,
	}
}

// templateColumns is the fixed column order of the import template. The
// importer matches by header name, not position, so reordered sheets still load.
var templateColumns = []string{
	"Company Name",
	"Industry",
	"Website",
	"No Of Employees Total",
	"Turn Over INR Cr",
	"Salute",
	"First Name",
	"Last Name",
	"Designation",
	"Department",
	"Job Level",
	"Specialization",
	"Official Email ID",
	"Personal Email ID",
	"Mobile Number",
	"Direct Phone Number",
	"Gender",
}

func headerKey(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(h)), "_"))
}

// uploadRow is one parsed spreadsheet row keyed by normalized header
type uploadRow map[string]string

func (r uploadRow) get(key string) string {
	return strings.TrimSpace(r[key])
}

func (r uploadRow) getPtr(key string) *string {
	return utils.TrimToNil(r[key])
}

// UploadContacts imports a spreadsheet row by row. Each row commits in its
// own transaction: a bad row is skipped and reported, rows before and after
// it still land. Rows whose official email matches an existing contact
// update that contact instead of inserting a duplicate.
func (bf *BulkUploadFlowImpl) UploadContacts(ctx context.Context, reader io.Reader, metadata *ClientMetadata) (*dto.BulkUploadResponse, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, NewBusinessError("UPLOAD_INVALID", "Failed to open spreadsheet", ErrUploadFileInvalid)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewBusinessError("UPLOAD_INVALID", "Spreadsheet has no sheets", ErrUploadSheetMissing)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, NewBusinessError("UPLOAD_INVALID", "Failed to read sheet", ErrUploadFileInvalid)
	}
	if len(rows) < 2 {
		return nil, NewBusinessError("UPLOAD_EMPTY", "Spreadsheet has no data rows", ErrUploadFileEmpty)
	}

	headerIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headerIdx[headerKey(h)] = i
	}

	response := &dto.BulkUploadResponse{TotalRows: len(rows) - 1}

	for i, raw := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		row := make(uploadRow, len(headerIdx))
		for key, idx := range headerIdx {
			if idx < len(raw) {
				row[key] = raw[idx]
			}
		}

		updated, err := bf.importRow(ctx, row)
		if err != nil {
			response.Failed++
			if len(response.Errors) < utils.BulkUploadMaxReportedErrors {
				response.Errors = append(response.Errors, dto.BulkUploadRowError{
					Row:    rowNum,
					Reason: err.Error(),
				})
			} else {
				response.ErrorsTrunc = true
			}
			continue
		}
		if updated {
			response.Updated++
		} else {
			response.Inserted++
		}
	}

	return response, nil
}

// importRow lands one spreadsheet row. Returns true when an existing contact
// was updated rather than a new one inserted.
func (bf *BulkUploadFlowImpl) importRow(ctx context.Context, row uploadRow) (updated bool, err error) {
	firstName := row.get("first_name")
	lastName := row.get("last_name")
	email := row.get("official_email_id")
	if firstName == "" && lastName == "" && email == "" {
		return false, fmt.Errorf("row has no name or official email")
	}

	err = repository.WithTransaction(ctx, bf.db, func(txCtx context.Context) error {
		companyID, err := bf.resolveCompanyRow(txCtx, row)
		if err != nil {
			return err
		}

		var existing *models.Contact
		if email != "" {
			existing, err = bf.contactRepo.ByOfficialEmail(txCtx, email)
			if err != nil {
				return fmt.Errorf("email lookup failed: %w", err)
			}
		}

		if existing != nil {
			bf.applyRowToContact(existing, row, companyID)
			existing.UpdatedAt = utils.ToPtr(utils.UTCNow())
			if err := bf.contactRepo.Update(txCtx, existing); err != nil {
				return fmt.Errorf("contact update failed: %w", err)
			}
			updated = true
			return nil
		}

		contact := &models.Contact{}
		bf.applyRowToContact(contact, row, companyID)
		if err := bf.contactRepo.Save(txCtx, contact); err != nil {
			return fmt.Errorf("contact insert failed: %w", err)
		}
		return nil
	})
	return updated, err
}

// resolveCompanyRow finds or creates the company named in the row
func (bf *BulkUploadFlowImpl) resolveCompanyRow(ctx context.Context, row uploadRow) (*int64, error) {
	name := row.get("company_name")
	if name == "" {
		return nil, nil
	}

	company, err := bf.companyRepo.ByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("company lookup failed: %w", err)
	}
	if company != nil {
		return &company.CompanyID, nil
	}

	company = &models.Company{
		CompanyName: utils.TrimToNil(name),
		Industry:    row.getPtr("industry"),
		Website:     row.getPtr("website"),
	}
	if v := row.get("no_of_employees_total"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			company.NoOfEmployeesTotal = &n
		}
	}
	if v := row.get("turn_over_inr_cr"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			company.TurnoverINRCr = &t
		}
	}

	if err := bf.companyRepo.Save(ctx, company); err != nil {
		return nil, fmt.Errorf("company insert failed: %w", err)
	}
	return &company.CompanyID, nil
}

func (bf *BulkUploadFlowImpl) applyRowToContact(contact *models.Contact, row uploadRow, companyID *int64) {
	if companyID != nil {
		contact.CompanyID = companyID
	}
	setIfPresent := func(dst **string, key string) {
		if v := row.getPtr(key); v != nil {
			*dst = v
		}
	}
	setIfPresent(&contact.Salute, "salute")
	setIfPresent(&contact.FirstName, "first_name")
	setIfPresent(&contact.LastName, "last_name")
	setIfPresent(&contact.Designation, "designation")
	setIfPresent(&contact.Department, "department")
	setIfPresent(&contact.JobLevel, "job_level")
	setIfPresent(&contact.Specialization, "specialization")
	setIfPresent(&contact.OfficialEmailID, "official_email_id")
	setIfPresent(&contact.PersonalEmailID, "personal_email_id")
	setIfPresent(&contact.MobileNumber, "mobile_number")
	setIfPresent(&contact.DirectPhoneNumber, "direct_phone_number")
	setIfPresent(&contact.Gender, "gender")
}

// BuildTemplate produces an empty import template with the expected headers
func (bf *BulkUploadFlowImpl) BuildTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, col := range templateColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportContacts writes the filtered contact base as a spreadsheet in the
// template column layout
func (bf *BulkUploadFlowImpl) ExportContacts(ctx context.Context, filter models.ContactFilter) ([]byte, error) {
	contacts, err := bf.contactRepo.ByFilter(ctx, filter, "contact_id ASC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("EXPORT_FAILED", "Failed to load contacts", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, col := range templateColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for rowIdx, contact := range contacts {
		values := []any{
			companyField(contact, func(c *models.Company) *string { return c.CompanyName }),
			companyField(contact, func(c *models.Company) *string { return c.Industry }),
			companyField(contact, func(c *models.Company) *string { return c.Website }),
			companyIntField(contact, func(c *models.Company) *int { return c.NoOfEmployeesTotal }),
			companyFloatField(contact, func(c *models.Company) *float64 { return c.TurnoverINRCr }),
			utils.Deref(contact.Salute),
			utils.Deref(contact.FirstName),
			utils.Deref(contact.LastName),
			utils.Deref(contact.Designation),
			utils.Deref(contact.Department),
			utils.Deref(contact.JobLevel),
			utils.Deref(contact.Specialization),
			utils.Deref(contact.OfficialEmailID),
			utils.Deref(contact.PersonalEmailID),
			utils.Deref(contact.MobileNumber),
			utils.Deref(contact.DirectPhoneNumber),
			utils.Deref(contact.Gender),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func companyField(contact *models.Contact, pick func(*models.Company) *string) string {
	if contact.Company == nil {
		return ""
	}
	return utils.Deref(pick(contact.Company))
}

func companyIntField(contact *models.Contact, pick func(*models.Company) *int) any {
	if contact.Company == nil {
		return ""
	}
	if v := pick(contact.Company); v != nil {
		return *v
	}
	return ""
}

func companyFloatField(contact *models.Contact, pick func(*models.Company) *float64) any {
	if contact.Company == nil {
		return ""
	}
	if v := pick(contact.Company); v != nil {
		return *v
	}
	return ""
}
