package stageengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

func TestValidateFieldValue(t *testing.T) {
	tests := []struct {
		name      string
		fieldType models.CustomFieldType
		value     any
		want      any
		wantErr   bool
	}{
		{"string ok", models.CustomFieldString, "  ACME Corp  ", "ACME Corp", false},
		{"string empty", models.CustomFieldString, "   ", nil, true},
		{"string wrong type", models.CustomFieldString, 12.0, nil, true},
		{"url ok", models.CustomFieldURL, "https://example.com/x", "https://example.com/x", false},
		{"url relative", models.CustomFieldURL, "/invoices/42", nil, true},
		{"date iso", models.CustomFieldDate, "2024-01-15", "2024-01-15", false},
		{"date german", models.CustomFieldDate, "15.01.2024", "2024-01-15", false},
		{"date junk", models.CustomFieldDate, "soon", nil, true},
		{"bool native", models.CustomFieldBoolean, true, true, false},
		{"bool string", models.CustomFieldBoolean, "true", true, false},
		{"int ok", models.CustomFieldInteger, 42.0, int64(42), false},
		{"int fractional", models.CustomFieldInteger, 42.5, nil, true},
		{"int string", models.CustomFieldInteger, "42", int64(42), false},
		{"float ok", models.CustomFieldFloat, 109.44, 109.44, false},
		{"monetary symbol", models.CustomFieldMonetary, "€109,44", 109.44, false},
		{"monetary junk", models.CustomFieldMonetary, "about a hundred", nil, true},
		{"documentlink array", models.CustomFieldDocumentLink, []any{41.0, 43.0}, []int{41, 43}, false},
		{"documentlink csv", models.CustomFieldDocumentLink, "41, 43", []int{41, 43}, false},
		{"documentlink negative", models.CustomFieldDocumentLink, []any{-1.0}, nil, true},
		{"select ok", models.CustomFieldSelect, "Option A", "Option A", false},
		{"unknown type", models.CustomFieldType("geo"), "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFieldValue(tt.fieldType, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
