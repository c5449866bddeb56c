package converter

import (
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
)

func MappingToResponse(mapping *entity.PatientDoctorMapping) *dto.MappingResponse {
	if mapping == nil {
		return nil
	}

	return &dto.MappingResponse{
		ID:           mapping.ID,
		PatientID:    mapping.PatientID,
		DoctorID:     mapping.DoctorID,
		Status:       mapping.Status,
		Notes:        mapping.Notes,
		AssignedDate: mapping.AssignedDate,
		LastVisit:    mapping.LastVisit,
		CreatedAt:    mapping.CreatedAt,
	}
}

func MappingsToListResponse(mappings []entity.PatientDoctorMapping) *dto.MappingListResponse {
	responses := make([]dto.MappingResponse, 0, len(mappings))
	for i := range mappings {
		responses = append(responses, *MappingToResponse(&mappings[i]))
	}

	return &dto.MappingListResponse{
		Mappings: responses,
		Total:    len(responses),
	}
}
