package businessflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
)

func newContactFixture() (*ContactFlowImpl, *fakeContactRepo, *fakeCompanyRepo) {
	contactRepo := &fakeContactRepo{
		contacts: map[int64]*models.Contact{},
		byEmail:  map[string]*models.Contact{},
	}
	companyRepo := &fakeCompanyRepo{companies: map[int64]*models.Company{}}
	flow := NewContactFlow(contactRepo, companyRepo, nil).(*ContactFlowImpl)
	return flow, contactRepo, companyRepo
}

func TestContactCreateAssignsID(t *testing.T) {
	flow, contactRepo, companyRepo := newContactFixture()
	companyRepo.companies[7] = &models.Company{CompanyID: 7, CompanyName: utils.ToPtr("Acme Widgets Pvt Ltd")}

	out, err := flow.Create(context.Background(), &dto.CreateContactRequest{
		CompanyID:       utils.ToPtr(int64(7)),
		FirstName:       utils.ToPtr("Ravi"),
		LastName:        utils.ToPtr("Sharma"),
		OfficialEmailID: utils.ToPtr("ravi.sharma@acme.example.com"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(1), out.ContactID)
	require.Len(t, contactRepo.saved, 1)
	assert.Equal(t, "Ravi", utils.Deref(contactRepo.saved[0].FirstName))
}

func TestContactCreateRejectsDuplicateEmail(t *testing.T) {
	flow, contactRepo, _ := newContactFixture()
	contactRepo.byEmail["ravi.sharma@acme.example.com"] = &models.Contact{ContactID: 9}

	out, err := flow.Create(context.Background(), &dto.CreateContactRequest{
		FirstName:       utils.ToPtr("Ravi"),
		OfficialEmailID: utils.ToPtr("ravi.sharma@acme.example.com"),
	}, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsDuplicateOfficialEmail(err))
	assert.Empty(t, contactRepo.saved)
}

func TestContactCreateRejectsUnknownCompany(t *testing.T) {
	flow, contactRepo, _ := newContactFixture()

	out, err := flow.Create(context.Background(), &dto.CreateContactRequest{
		CompanyID: utils.ToPtr(int64(404)),
		FirstName: utils.ToPtr("Ravi"),
	}, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsCompanyNotFound(err))
	assert.Empty(t, contactRepo.saved)
}

func TestContactCreateWithoutEmailSkipsUniquenessCheck(t *testing.T) {
	flow, contactRepo, _ := newContactFixture()

	out, err := flow.Create(context.Background(), &dto.CreateContactRequest{
		FirstName:    utils.ToPtr("Priya"),
		MobileNumber: utils.ToPtr("+919876543210"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, contactRepo.saved, 1)
}

func TestContactGetNotFound(t *testing.T) {
	flow, _, _ := newContactFixture()

	out, err := flow.Get(context.Background(), 12345)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsContactNotFound(err))

	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "CONTACT_NOT_FOUND", bizErr.Code)
}

func TestContactUpdateAllowsOwnEmail(t *testing.T) {
	flow, contactRepo, _ := newContactFixture()
	existing := &models.Contact{
		ContactID:       3,
		FirstName:       utils.ToPtr("Ravi"),
		OfficialEmailID: utils.ToPtr("ravi.sharma@acme.example.com"),
	}
	contactRepo.contacts[3] = existing
	contactRepo.byEmail["ravi.sharma@acme.example.com"] = existing

	out, err := flow.Update(context.Background(), &dto.UpdateContactRequest{
		ContactID: 3,
		CreateContactRequest: dto.CreateContactRequest{
			FirstName:       utils.ToPtr("Ravi"),
			Designation:     utils.ToPtr("Director of Procurement"),
			OfficialEmailID: utils.ToPtr("ravi.sharma@acme.example.com"),
		},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, contactRepo.updated, 1)
	assert.Equal(t, "Director of Procurement", utils.Deref(contactRepo.updated[0].Designation))
	assert.NotNil(t, contactRepo.updated[0].UpdatedAt)
}

func TestContactUpdateRejectsEmailTakenByAnother(t *testing.T) {
	flow, contactRepo, _ := newContactFixture()
	contactRepo.contacts[3] = &models.Contact{ContactID: 3, FirstName: utils.ToPtr("Ravi")}
	contactRepo.byEmail["priya.nair@acme.example.com"] = &models.Contact{ContactID: 8}

	out, err := flow.Update(context.Background(), &dto.UpdateContactRequest{
		ContactID: 3,
		CreateContactRequest: dto.CreateContactRequest{
			OfficialEmailID: utils.ToPtr("priya.nair@acme.example.com"),
		},
	}, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsDuplicateOfficialEmail(err))
	assert.Empty(t, contactRepo.updated)
}

func TestContactUpdateNotFound(t *testing.T) {
	flow, _, _ := newContactFixture()

	out, err := flow.Update(context.Background(), &dto.UpdateContactRequest{ContactID: 99}, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsContactNotFound(err))
}

func TestContactListNormalizesPagination(t *testing.T) {
	flow, contactRepo, _ := newContactFixture()
	contactRepo.filtered = []*models.Contact{
		{ContactID: 1, FirstName: utils.ToPtr("Ravi")},
		{ContactID: 2, FirstName: utils.ToPtr("Priya")},
	}

	out, err := flow.List(context.Background(), &dto.ListContactsRequest{Page: -2, PageSize: 3})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, out.Page)
	assert.Equal(t, utils.PreviewMinPageSize, out.PageSize)
	assert.Len(t, out.Contacts, 2)
}

func TestContactDeleteNotFound(t *testing.T) {
	flow, _, _ := newContactFixture()

	err := flow.Delete(context.Background(), 77)
	require.Error(t, err)
	assert.True(t, IsContactNotFound(err))
}
