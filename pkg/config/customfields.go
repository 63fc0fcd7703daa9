package config

import (
	"fmt"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// CustomFieldRegistry is the set of custom-field definitions the Custom
// Fields stage may populate, keyed by DMS field name. It is loaded from the
// custom_fields section of corvid.yaml; nothing refreshes it from the DMS at
// runtime.
type CustomFieldRegistry struct {
	Fields map[string]models.CustomFieldDef `yaml:"fields"`
}

// Get looks up a custom-field definition by name.
func (r *CustomFieldRegistry) Get(name string) (models.CustomFieldDef, error) {
	def, ok := r.Fields[name]
	if !ok {
		return models.CustomFieldDef{}, fmt.Errorf("%w: custom field %q", ErrNotFound, name)
	}
	return def, nil
}

// validCustomFieldType reports whether a data type name is one of the DMS's supported
// custom-field value types.
func validCustomFieldType(t models.CustomFieldType) bool {
	switch t {
	case models.CustomFieldString, models.CustomFieldURL, models.CustomFieldDate,
		models.CustomFieldBoolean, models.CustomFieldInteger, models.CustomFieldFloat,
		models.CustomFieldMonetary, models.CustomFieldDocumentLink, models.CustomFieldSelect:
		return true
	default:
		return false
	}
}
