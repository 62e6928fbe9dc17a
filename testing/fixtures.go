package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
	"golang.org/x/crypto/bcrypt"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// TestUserPassword is the plaintext behind every fixture user's hash
const TestUserPassword = "TestPass123!"

// CreateTestUser creates an active console operator with a unique email
func (tf *TestFixtures) CreateTestUser() (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	user := &models.User{
		Email:        fmt.Sprintf("operator.%s@example.com", randomDigits),
		PasswordHash: string(hashedPassword),
		DisplayName:  utils.ToPtr("Test Operator"),
		Role:         models.UserRoleOperator,
		IsActive:     true,
	}

	if err := tf.DB.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create test user: %w", err)
	}

	return user, nil
}

// CreateTestCompany creates a company with a unique name
func (tf *TestFixtures) CreateTestCompany() (*models.Company, error) {
	randomDigits := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	company := &models.Company{
		CompanyName:        utils.ToPtr(fmt.Sprintf("Acme Widgets %s Pvt Ltd", randomDigits)),
		Industry:           utils.ToPtr("Manufacturing"),
		Headquarters:       utils.ToPtr("Mumbai"),
		Employees:          utils.ToPtr(250),
		AnnualRevenue:      utils.ToPtr(42.5),
		PostalAddress1:     utils.ToPtr("14 Industrial Estate"),
		Phone1:             utils.ToPtr("02212345678"),
		Website:            utils.ToPtr(fmt.Sprintf("https://acme-%s.example.com", randomDigits)),
		NoOfEmployeesTotal: utils.ToPtr(250),
		TurnoverINRCr:      utils.ToPtr(42.5),
	}

	if err := tf.DB.DB.Create(company).Error; err != nil {
		return nil, fmt.Errorf("failed to create test company: %w", err)
	}

	return company, nil
}

// CreateTestContact creates a contact linked to the given company with a
// unique official email. Pass nil for an orphan contact.
func (tf *TestFixtures) CreateTestContact(company *models.Company) (*models.Contact, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	contact := &models.Contact{
		Salute:          utils.ToPtr("Mr"),
		FirstName:       utils.ToPtr("Ravi"),
		LastName:        utils.ToPtr("Sharma"),
		Designation:     utils.ToPtr("Head of Procurement"),
		Department:      utils.ToPtr("Purchase"),
		JobLevel:        utils.ToPtr("Head"),
		OfficialEmailID: utils.ToPtr(fmt.Sprintf("ravi.sharma.%s@example.com", randomDigits)),
		MobileNumber:    utils.ToPtr(fmt.Sprintf("+919%s", randomDigits)),
	}
	if company != nil {
		contact.CompanyID = &company.CompanyID
	}

	if err := tf.DB.DB.Create(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create test contact: %w", err)
	}

	return contact, nil
}

// CreateTestCampaign creates a campaign running for the next 30 days
func (tf *TestFixtures) CreateTestCampaign() (*models.Campaign, error) {
	randomDigits := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	campaign := &models.Campaign{
		Name:          fmt.Sprintf("Q3 Outreach %s", randomDigits),
		ClientName:    "Globex Corporation",
		ServicingLead: "Priya Nair",
		StartDate:     utils.UTCNow(),
		EndDate:       utils.UTCNowAdd(30 * 24 * time.Hour),
		ListSize:      5000,
	}

	if err := tf.DB.DB.Create(campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to create test campaign: %w", err)
	}

	return campaign, nil
}

// CreateTestCampaignFile creates a working file inside the given campaign
func (tf *TestFixtures) CreateTestCampaignFile(campaignID uuid.UUID) (*models.CampaignFile, error) {
	randomDigits := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	file := &models.CampaignFile{
		CampaignID:    campaignID,
		FileName:      fmt.Sprintf("wave-1-%s", randomDigits),
		TotalContacts: 1000,
	}

	if err := tf.DB.DB.Create(file).Error; err != nil {
		return nil, fmt.Errorf("failed to create test campaign file: %w", err)
	}

	return file, nil
}

// CreateDraftRun creates an unsaved audience run with the given filters
func (tf *TestFixtures) CreateDraftRun(filters models.FilterSnapshot) (*models.AudienceRun, error) {
	if filters == nil {
		filters = models.FilterSnapshot{"industry": "Manufacturing"}
	}

	run := &models.AudienceRun{
		Filters: filters,
		Status:  models.RunStatusDraft,
	}

	if err := tf.DB.DB.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to create draft run: %w", err)
	}

	return run, nil
}

// CreateSavedRun creates a completed audience run with the given result count
func (tf *TestFixtures) CreateSavedRun(totalResults int64) (*models.AudienceRun, error) {
	randomDigits := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	run := &models.AudienceRun{
		Name:         utils.ToPtr(fmt.Sprintf("Manufacturing Heads %s", randomDigits)),
		Notes:        utils.ToPtr("Fixture run"),
		Filters:      models.FilterSnapshot{"industry": "Manufacturing", "job_level": []any{"Head"}},
		Status:       models.RunStatusCompleted,
		TotalResults: totalResults,
	}

	if err := tf.DB.DB.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to create saved run: %w", err)
	}

	return run, nil
}

// SeedMasterData inserts one row into each master table for dropdown tests
func (tf *TestFixtures) SeedMasterData() error {
	city := &models.City{
		City:    utils.ToPtr("Pune"),
		State:   utils.ToPtr("Maharashtra"),
		Region:  utils.ToPtr("West"),
		Country: utils.ToPtr("India"),
	}
	if err := tf.DB.DB.Create(city).Error; err != nil {
		return fmt.Errorf("failed to seed city: %w", err)
	}

	industry := &models.Industry{
		IndustryVertical: utils.ToPtr("Manufacturing"),
		SubVertical:      utils.ToPtr("Auto Components"),
	}
	if err := tf.DB.DB.Create(industry).Error; err != nil {
		return fmt.Errorf("failed to seed industry: %w", err)
	}

	if err := tf.DB.DB.Create(&models.Department{DepartmentName: "Purchase"}).Error; err != nil {
		return fmt.Errorf("failed to seed department: %w", err)
	}
	if err := tf.DB.DB.Create(&models.JobLevel{JobLevelName: "Head"}).Error; err != nil {
		return fmt.Errorf("failed to seed job level: %w", err)
	}
	if err := tf.DB.DB.Create(&models.EmployeeRange{EmployeeRange: "101-500"}).Error; err != nil {
		return fmt.Errorf("failed to seed employee range: %w", err)
	}
	if err := tf.DB.DB.Create(&models.TurnoverRange{TurnoverRange: "10-50 Cr"}).Error; err != nil {
		return fmt.Errorf("failed to seed turnover range: %w", err)
	}

	return nil
}

// CreateContactsForCompany bulk-creates n contacts under one company
func (tf *TestFixtures) CreateContactsForCompany(company *models.Company, n int) ([]*models.Contact, error) {
	contacts := make([]*models.Contact, 0, n)
	for i := 0; i < n; i++ {
		contact, err := tf.CreateTestContact(company)
		if err != nil {
			return nil, fmt.Errorf("failed to create contact %d: %w", i, err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}
