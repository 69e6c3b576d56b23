package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_number", validateMonthNumber)
	_ = v.RegisterValidation("week_number", validateWeekNumber)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("dashboard_role", validateDashboardRole)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMonthNumber validates a calendar month number (1-12)
func validateMonthNumber(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// validateWeekNumber validates a within-month week number. A month spans at
// most six Sunday-to-Saturday weeks.
func validateWeekNumber(fl validator.FieldLevel) bool {
	week := fl.Field().Int()
	return week >= 1 && week <= 6
}

// validateISODate validates a YYYY-MM-DD date string
func validateISODate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, date)
	return matched
}

// validateDashboardRole validates that a role is one of the allowed roles
func validateDashboardRole(fl validator.FieldLevel) bool {
	role := strings.ToLower(fl.Field().String())
	validRoles := map[string]bool{
		"admin":  true,
		"viewer": true,
	}
	return validRoles[role]
}
