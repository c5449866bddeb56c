package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthcare-management/pkg/apperror"
)

type Response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Kind    apperror.Kind `json:"kind,omitempty"`
	Data    interface{}   `json:"data,omitempty"`
	Error   interface{}   `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Kind:    apperror.KindForStatus(statusCode),
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Kind:    apperror.KindValidation,
		Error:   errors,
	})
}

// FromError renders err using its apperror kind. Errors without a kind are
// reported as internal failures with the fallback message, hiding the cause.
func FromError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		InternalServerError(w, fallback)
		return
	}

	var details interface{}
	if len(appErr.Fields) > 0 {
		details = appErr.Fields
	}

	JSON(w, apperror.HTTPStatus(appErr.Kind), Response{
		Success: false,
		Message: appErr.Message,
		Kind:    appErr.Kind,
		Error:   details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, nil)
}
