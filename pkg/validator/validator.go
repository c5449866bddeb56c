package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DoctorStatuses is the union of the statuses used by the doctor forms.
var DoctorStatuses = []string{"Available", "Busy", "On Leave", "Active", "Not Available"}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report JSON field names so clients can map errors back to their payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("doctor_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, status := range DoctorStatuses {
			if s == status {
				return true
			}
		}
		return false
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "email":
				errs[field] = field + " must be a valid email address"
			case "min":
				if isNumber(e.Kind()) {
					errs[field] = field + " must be at least " + e.Param()
				} else {
					errs[field] = field + " must be at least " + e.Param() + " characters"
				}
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errs[field] = field + " must be greater than " + e.Param()
			case "gte":
				errs[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errs[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errs[field] = field + " must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
			case "doctor_status":
				errs[field] = field + " must be one of: " + strings.Join(DoctorStatuses, ", ")
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
