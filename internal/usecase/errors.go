package usecase

import (
	"errors"

	"healthcare-management/internal/domain/repository"
	"healthcare-management/pkg/apperror"
)

var (
	ErrEmailAlreadyExists = apperror.New(apperror.KindConflict, "Email already exists")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "Invalid email or password")
	ErrNotAuthenticated   = apperror.New(apperror.KindUnauthorized, "Not authenticated")

	ErrPatientNotFound  = apperror.New(apperror.KindNotFound, "Patient not found")
	ErrPatientForbidden = apperror.New(apperror.KindForbidden, "Unauthorized access to patient data")
	ErrDoctorNotFound   = apperror.New(apperror.KindNotFound, "Doctor not found")
	ErrDoctorForbidden  = apperror.New(apperror.KindForbidden, "Unauthorized access to doctor data")

	// Mapping checks do not reveal whether a foreign record exists.
	ErrMappingPatientUnavailable = apperror.New(apperror.KindNotFound, "Patient not found or unauthorized")
	ErrMappingDoctorUnavailable  = apperror.New(apperror.KindNotFound, "Doctor not found or unauthorized")
	ErrMappingNotFound           = apperror.New(apperror.KindNotFound, "Mapping not found")
	ErrMappingForbidden          = apperror.New(apperror.KindForbidden, "Unauthorized to delete this mapping")
	ErrMappingExists             = apperror.New(apperror.KindConflict, "This doctor is already assigned to the patient")
)

// storeError classifies a repository failure. Errors that already carry a
// kind pass through unchanged.
func storeError(message string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrUnavailable):
		return apperror.Wrap(apperror.KindUnavailable, "Service temporarily unavailable", err)
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return apperror.Wrap(apperror.KindInvalidReference, "Referenced record does not exist", err)
	case errors.Is(err, repository.ErrCheckViolation):
		return apperror.Wrap(apperror.KindValidation, "Invalid field value", err)
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperror.Wrap(apperror.KindConflict, "Record already exists", err)
	default:
		return apperror.Wrap(apperror.KindInternal, message, err)
	}
}
