package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/usecase"
	"healthcare-management/pkg/response"
	"healthcare-management/pkg/validator"
)

type MappingHandler struct {
	mappingUsecase usecase.MappingUsecase
	validator      *validator.CustomValidator
}

func NewMappingHandler(mappingUsecase usecase.MappingUsecase, validator *validator.CustomValidator) *MappingHandler {
	return &MappingHandler{
		mappingUsecase: mappingUsecase,
		validator:      validator,
	}
}

func (h *MappingHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.CreateMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	mapping, err := h.mappingUsecase.CreateMapping(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to create mapping")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor assigned to patient successfully", mapping)
}

func (h *MappingHandler) GetAllMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.mappingUsecase.GetAllMappings(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get mappings")
		return
	}

	response.Success(w, http.StatusOK, "Mappings retrieved successfully", mappings)
}

func (h *MappingHandler) GetMappingsByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "Invalid patient ID")
	if !ok {
		return
	}

	mappings, err := h.mappingUsecase.GetMappingsByPatient(r.Context(), userID, patientID)
	if err != nil {
		response.FromError(w, err, "Failed to get patient mappings")
		return
	}

	response.Success(w, http.StatusOK, "Patient mappings retrieved successfully", mappings)
}

func (h *MappingHandler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	mappingID, ok := pathID(w, r, "id", "Invalid mapping ID")
	if !ok {
		return
	}

	if err := h.mappingUsecase.DeleteMapping(r.Context(), userID, mappingID); err != nil {
		response.FromError(w, err, "Failed to delete mapping")
		return
	}

	response.Success(w, http.StatusOK, "Mapping removed successfully", nil)
}
