package dto

import "time"

type CreateMappingRequest struct {
	PatientID uint       `json:"patientId" validate:"required,gt=0"`
	DoctorID  uint       `json:"doctorId" validate:"required,gt=0"`
	Status    string     `json:"status" validate:"required,oneof=Active Pending Completed"`
	Notes     *string    `json:"notes" validate:"omitempty"`
	LastVisit *time.Time `json:"lastVisit" validate:"omitempty"`
}

type MappingResponse struct {
	ID           uint       `json:"id"`
	PatientID    uint       `json:"patientId"`
	DoctorID     uint       `json:"doctorId"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
	AssignedDate time.Time  `json:"assignedDate"`
	LastVisit    *time.Time `json:"lastVisit,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type MappingListResponse struct {
	Mappings []MappingResponse `json:"mappings"`
	Total    int               `json:"total"`
}
