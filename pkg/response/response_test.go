package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-management/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFromErrorUsesKind(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, fmt.Errorf("wrapped: %w", apperror.New(apperror.KindForbidden, "Unauthorized access to patient data")), "fallback")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "forbidden", body["kind"])
	assert.Equal(t, "Unauthorized access to patient data", body["message"])
	assert.NotContains(t, body, "error")
}

func TestFromErrorCarriesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, apperror.Validation("Invalid patient data", map[string]string{"age": "age is required"}), "fallback")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "validation_error", body["kind"])
	assert.Equal(t, map[string]interface{}{"age": "age is required"}, body["error"])
}

func TestFromErrorHidesUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, errors.New("pq: relation does not exist"), "Failed to get patients")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "internal", body["kind"])
	assert.Equal(t, "Failed to get patients", body["message"])
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, body["data"])
	assert.NotContains(t, body, "kind")
}
