package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FirstName string  `json:"firstName" validate:"required,min=2"`
	Email     string  `json:"email" validate:"required,email"`
	Age       *int    `json:"age" validate:"omitempty,gt=0"`
	Status    string  `json:"status" validate:"required,doctor_status"`
	Notes     *string `json:"notes" validate:"omitempty"`
}

func intPtr(i int) *int { return &i }

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{FirstName: "J", Email: "nope", Age: intPtr(0), Status: "Retired"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "firstName must be at least 2 characters", errs["firstName"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "age must be greater than 0", errs["age"])
	assert.Contains(t, errs["status"], "On Leave")
	assert.Len(t, errs, 4)
}

func TestDoctorStatusAcceptsBothFlows(t *testing.T) {
	v := NewValidator()
	for _, status := range DoctorStatuses {
		err := v.Validate(&sample{FirstName: "Jane", Email: "j@x.com", Status: status})
		assert.NoError(t, err, status)
	}
}

func TestOmittedPointerIsNotValidated(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{FirstName: "Jane", Email: "j@x.com", Status: "Busy"}))
}

func TestFormatIgnoresOtherErrors(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
