package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectra/lead-console/utils"
)

func TestResultRowModernShapePassesThrough(t *testing.T) {
	raw := audienceRow{
		ContactID:   42,
		CompanyID:   utils.ToPtr(int64(7)),
		CompanyName: utils.ToPtr("Acme Widgets Pvt Ltd"),
		FirstName:   utils.ToPtr("Ravi"),
		LastName:    utils.ToPtr("Sharma"),
		Email:       utils.ToPtr("ravi.sharma@acme.example.com"),
		Phone:       utils.ToPtr("+919812345678"),
		City:        utils.ToPtr("Pune"),
		Industry:    utils.ToPtr("Manufacturing"),
	}

	row := raw.toResultRow()
	assert.Equal(t, int64(42), row.ContactID)
	assert.Equal(t, "Ravi", row.FirstName)
	assert.Equal(t, "Sharma", row.LastName)
	assert.Equal(t, "+919812345678", row.Phone)
	assert.Equal(t, "Ravi Sharma", row.DisplayName())
}

func TestResultRowSplitsLegacyFullName(t *testing.T) {
	raw := audienceRow{
		ContactID: 9,
		FullName:  utils.ToPtr("Priya Nair"),
	}

	row := raw.toResultRow()
	assert.Equal(t, "Priya", row.FirstName)
	assert.Equal(t, "Nair", row.LastName)
	assert.Equal(t, "Priya Nair", row.FullName)
	assert.Equal(t, "Priya Nair", row.DisplayName())
}

func TestResultRowSplitsSingleWordFullName(t *testing.T) {
	raw := audienceRow{
		ContactID: 10,
		FullName:  utils.ToPtr("Madonna"),
	}

	row := raw.toResultRow()
	assert.Equal(t, "Madonna", row.FirstName)
	assert.Empty(t, row.LastName)
}

func TestResultRowKeepsSplitNamesOverFullName(t *testing.T) {
	raw := audienceRow{
		ContactID: 11,
		FirstName: utils.ToPtr("Ravi"),
		LastName:  utils.ToPtr("Sharma"),
		FullName:  utils.ToPtr("R. Sharma"),
	}

	row := raw.toResultRow()
	assert.Equal(t, "Ravi", row.FirstName)
	assert.Equal(t, "Sharma", row.LastName)
}

func TestResultRowFallsBackToMobile(t *testing.T) {
	raw := audienceRow{
		ContactID: 12,
		Mobile:    utils.ToPtr("+919876543210"),
	}

	row := raw.toResultRow()
	assert.Equal(t, "+919876543210", row.Phone)

	raw.Phone = utils.ToPtr("+912024441234")
	row = raw.toResultRow()
	assert.Equal(t, "+912024441234", row.Phone)
}

func TestResultRowsFoldWindowedTotal(t *testing.T) {
	raw := []audienceRow{
		{ContactID: 1, FullName: utils.ToPtr("Priya Nair"), TotalCount: 321},
		{ContactID: 2, FirstName: utils.ToPtr("Ravi"), TotalCount: 321},
	}

	rows, total := toResultRows(raw)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(321), total)
	assert.Equal(t, "Priya", rows[0].FirstName)
	assert.Equal(t, "Ravi", rows[1].FirstName)
}

func TestResultRowsEmptyInput(t *testing.T) {
	rows, total := toResultRows(nil)
	assert.Empty(t, rows)
	assert.Zero(t, total)
}
