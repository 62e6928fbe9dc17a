package models

import (
	"testing"

	"github.com/prospectra/lead-console/utils"
	"github.com/stretchr/testify/assert"
)

func TestAudienceFilterSetNormalized(t *testing.T) {
	set := AudienceFilterSet{
		Industry:    utils.ToPtr("Manufacturing"),
		CityID:      utils.ToPtr(12),
		HasEmail:    true,
		HasPhone:    false,
		EmployeeMin: utils.ToPtr(0),
	}

	assert.Equal(t, map[string]any{
		"industry":     "Manufacturing",
		"city_id":      12,
		"has_email":    true,
		"employee_min": 0,
	}, set.Normalized())
}

func TestAudienceFilterSetEmptyNormalizesToEmptyMap(t *testing.T) {
	set := AudienceFilterSet{}

	normalized := set.Normalized()
	assert.NotNil(t, normalized)
	assert.Empty(t, normalized)
	assert.True(t, set.IsEmpty())
}

func TestAudienceFilterSetFalseTogglesAreNotConstraints(t *testing.T) {
	set := AudienceFilterSet{HasEmail: false, HasPhone: false}
	assert.True(t, set.IsEmpty())

	set.HasPhone = true
	assert.False(t, set.IsEmpty())
}
