package dto

import "time"

// CreatePatientRequest carries no owner; the caller becomes the owner.
type CreatePatientRequest struct {
	FirstName    string     `json:"firstName" validate:"required,min=2"`
	LastName     string     `json:"lastName" validate:"required,min=2"`
	Email        string     `json:"email" validate:"required,email"`
	Phone        string     `json:"phone" validate:"required,min=10"`
	Age          int        `json:"age" validate:"required,gt=0"`
	Gender       string     `json:"gender" validate:"required"`
	Status       string     `json:"status" validate:"required,oneof=Active Pending Critical Recovered"`
	MedicalNotes *string    `json:"medicalNotes" validate:"omitempty"`
	LastVisit    *time.Time `json:"lastVisit" validate:"omitempty"`
}

// UpdatePatientRequest is a partial update: nil fields are left unchanged.
type UpdatePatientRequest struct {
	FirstName    *string    `json:"firstName" validate:"omitempty,min=2"`
	LastName     *string    `json:"lastName" validate:"omitempty,min=2"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone" validate:"omitempty,min=10"`
	Age          *int       `json:"age" validate:"omitempty,gt=0"`
	Gender       *string    `json:"gender" validate:"omitempty,min=1"`
	Status       *string    `json:"status" validate:"omitempty,oneof=Active Pending Critical Recovered"`
	MedicalNotes *string    `json:"medicalNotes" validate:"omitempty"`
	LastVisit    *time.Time `json:"lastVisit" validate:"omitempty"`
}

type PatientResponse struct {
	ID           uint       `json:"id"`
	UserID       uint       `json:"userId"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Age          int        `json:"age"`
	Gender       string     `json:"gender"`
	Status       string     `json:"status"`
	MedicalNotes *string    `json:"medicalNotes,omitempty"`
	LastVisit    *time.Time `json:"lastVisit,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
