package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPruneEmptyScalars(t *testing.T) {
	assert.Nil(t, PruneEmpty(nil))
	assert.Nil(t, PruneEmpty(""))
	assert.Nil(t, PruneEmpty(false))

	assert.Equal(t, 0, PruneEmpty(0))
	assert.Equal(t, 0.0, PruneEmpty(0.0))
	assert.Equal(t, true, PruneEmpty(true))
	assert.Equal(t, "x", PruneEmpty("x"))
}

func TestPruneEmptyMap(t *testing.T) {
	in := map[string]any{
		"industry":   "Manufacturing",
		"text":       "",
		"has_email":  false,
		"has_phone":  true,
		"city_id":    0,
		"unset":      nil,
		"department": "Finance",
	}

	out := PruneEmpty(in)
	assert.Equal(t, map[string]any{
		"industry":   "Manufacturing",
		"has_phone":  true,
		"city_id":    0,
		"department": "Finance",
	}, out)
}

func TestPruneEmptyCollapsesEmptyCollections(t *testing.T) {
	assert.Nil(t, PruneEmpty(map[string]any{}))
	assert.Nil(t, PruneEmpty([]any{}))
	assert.Nil(t, PruneEmpty(map[string]any{"a": "", "b": nil, "c": false}))
	assert.Nil(t, PruneEmpty([]any{"", nil, false}))
}

func TestPruneEmptyNested(t *testing.T) {
	in := map[string]any{
		"filters": map[string]any{
			"job_levels": []any{"CXO", "", "Head"},
			"empty":      map[string]any{"x": ""},
		},
		"toggles": []any{false, false},
	}

	out := PruneEmpty(in)
	assert.Equal(t, map[string]any{
		"filters": map[string]any{
			"job_levels": []any{"CXO", "Head"},
		},
	}, out)
}

func TestPruneEmptyIdempotent(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{"b": []any{"", "kept", nil}},
		"c": false,
		"d": 42,
	}

	once := PruneEmpty(in)
	twice := PruneEmpty(once)
	assert.Equal(t, once, twice)
}

func TestPruneEmptyMapNeverNil(t *testing.T) {
	out := PruneEmptyMap(map[string]any{"a": "", "b": false})
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out = PruneEmptyMap(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
