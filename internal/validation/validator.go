package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the dashboard rules.
// Field errors are reported under their query, path or JSON parameter name.
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("record_id", validateRecordID)
	_ = v.RegisterValidation("filter_text", validateFilterText)

	v.RegisterTagNameFunc(ParameterName)

	return &Validator{validate: v}
}

// ParameterName names a struct field by its query, param or json tag
func ParameterName(field reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// validateRecordID accepts non-empty identifiers without control characters.
// Identifiers end up in URLs and chart labels.
func validateRecordID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" {
		return false
	}
	return strings.IndexFunc(id, unicode.IsControl) < 0
}

// validateFilterText accepts any valid UTF-8 text, including the empty string
func validateFilterText(fl validator.FieldLevel) bool {
	return utf8.ValidString(fl.Field().String())
}
