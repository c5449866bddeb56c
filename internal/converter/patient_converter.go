package converter

import (
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		UserID:       patient.UserID,
		FirstName:    patient.FirstName,
		LastName:     patient.LastName,
		Email:        patient.Email,
		Phone:        patient.Phone,
		Age:          patient.Age,
		Gender:       patient.Gender,
		Status:       patient.Status,
		MedicalNotes: patient.MedicalNotes,
		LastVisit:    patient.LastVisit,
		CreatedAt:    patient.CreatedAt,
	}
}

func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}

// CreatePatientRequestToEntity builds a patient owned by userID.
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest, userID uint) *entity.Patient {
	return &entity.Patient{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Gender:       req.Gender,
		Status:       req.Status,
		MedicalNotes: req.MedicalNotes,
		LastVisit:    req.LastVisit,
	}
}

// ApplyPatientUpdate copies the supplied fields onto patient and returns the
// column names that changed.
func ApplyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) []string {
	var columns []string

	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
		columns = append(columns, "first_name")
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
		columns = append(columns, "last_name")
	}
	if req.Email != nil {
		patient.Email = *req.Email
		columns = append(columns, "email")
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
		columns = append(columns, "phone")
	}
	if req.Age != nil {
		patient.Age = *req.Age
		columns = append(columns, "age")
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
		columns = append(columns, "gender")
	}
	if req.Status != nil {
		patient.Status = *req.Status
		columns = append(columns, "status")
	}
	if req.MedicalNotes != nil {
		patient.MedicalNotes = req.MedicalNotes
		columns = append(columns, "medical_notes")
	}
	if req.LastVisit != nil {
		patient.LastVisit = req.LastVisit
		columns = append(columns, "last_visit")
	}

	return columns
}
