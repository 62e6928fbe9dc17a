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

func newCompanyFixture() (*CompanyFlowImpl, *fakeCompanyRepo) {
	companyRepo := &fakeCompanyRepo{companies: map[int64]*models.Company{}}
	flow := NewCompanyFlow(companyRepo, nil).(*CompanyFlowImpl)
	return flow, companyRepo
}

func TestCompanyCreateRequiresName(t *testing.T) {
	flow, companyRepo := newCompanyFixture()

	out, err := flow.Create(context.Background(), &dto.CreateCompanyRequest{CompanyName: "  "}, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrCompanyNameRequired)
	assert.Empty(t, companyRepo.saved)
}

func TestCompanyCreateAssignsID(t *testing.T) {
	flow, companyRepo := newCompanyFixture()

	out, err := flow.Create(context.Background(), &dto.CreateCompanyRequest{
		CompanyName:        "Globex Corporation",
		Industry:           utils.ToPtr("Manufacturing"),
		Website:            utils.ToPtr("globex.example.com"),
		NoOfEmployeesTotal: utils.ToPtr(500),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(1), out.CompanyID)
	require.Len(t, companyRepo.saved, 1)
	assert.Equal(t, "Globex Corporation", utils.Deref(companyRepo.saved[0].CompanyName))
	assert.Equal(t, "Manufacturing", utils.Deref(companyRepo.saved[0].Industry))
}

func TestCompanyGetNotFound(t *testing.T) {
	flow, _ := newCompanyFixture()

	out, err := flow.Get(context.Background(), 404)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsCompanyNotFound(err))
}

func TestCompanyUpdateNotFound(t *testing.T) {
	flow, _ := newCompanyFixture()

	out, err := flow.Update(context.Background(), &dto.UpdateCompanyRequest{
		CompanyID:            404,
		CreateCompanyRequest: dto.CreateCompanyRequest{CompanyName: "Globex Corporation"},
	}, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsCompanyNotFound(err))
}

func TestCompanyUpdateReplacesFields(t *testing.T) {
	flow, companyRepo := newCompanyFixture()
	companyRepo.companies[7] = &models.Company{
		CompanyID:   7,
		CompanyName: utils.ToPtr("Globex Corporation"),
		Industry:    utils.ToPtr("Manufacturing"),
	}

	out, err := flow.Update(context.Background(), &dto.UpdateCompanyRequest{
		CompanyID: 7,
		CreateCompanyRequest: dto.CreateCompanyRequest{
			CompanyName: "Globex Corporation",
			Industry:    utils.ToPtr("Auto Components"),
		},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, companyRepo.updated, 1)
	assert.Equal(t, "Auto Components", utils.Deref(companyRepo.updated[0].Industry))
	assert.NotNil(t, companyRepo.updated[0].UpdatedAt)
}

func TestCompanyListNormalizesPagination(t *testing.T) {
	flow, _ := newCompanyFixture()

	out, err := flow.List(context.Background(), &dto.ListCompaniesRequest{Page: 0, PageSize: 0})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, out.Page)
	assert.Equal(t, utils.PreviewDefaultPageSize, out.PageSize)
	assert.Empty(t, out.Companies)
}

func TestCompanyDeleteNotFound(t *testing.T) {
	flow, _ := newCompanyFixture()

	err := flow.Delete(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, IsCompanyNotFound(err))
}
