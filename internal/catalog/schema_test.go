package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.xesthora.dev/xesthora/internal/catalog"
)

func exampleSchema() catalog.Schema {
	return catalog.Schema{
		Name: "example",
		Columns: []catalog.ColumnSpec{
			{Name: "calendar", Required: true, Type: catalog.ColumnString},
			{Name: "count", Required: false, Default: "0", Type: catalog.ColumnInt},
		},
	}
}

func TestSchema_ValidateMissingRequired(t *testing.T) {
	_, err := exampleSchema().Validate([]string{"count"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrMissingRequired))
}

func TestSchema_ValidateReportsUnknownColumns(t *testing.T) {
	unknown, err := exampleSchema().Validate([]string{"calendar", "count", "mystery"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mystery"}, unknown)
}

func TestSchema_CoerceFillsDefaults(t *testing.T) {
	out, err := exampleSchema().Coerce(map[string]string{"calendar": "X"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "0", out["count"])
}

func TestSchema_CoerceRejectsBadType(t *testing.T) {
	_, err := exampleSchema().Coerce(map[string]string{"calendar": "X", "count": "not-a-number"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrBadType))
}
