package dto

import "time"

type CreateDoctorRequest struct {
	Title             string  `json:"title" validate:"required"`
	Name              string  `json:"name" validate:"required,min=2"`
	Email             string  `json:"email" validate:"required,email"`
	Phone             string  `json:"phone" validate:"required,min=10"`
	Specialty         string  `json:"specialty" validate:"required"`
	Qualification     string  `json:"qualification" validate:"required,min=2"`
	Status            string  `json:"status" validate:"required,doctor_status"`
	Bio               *string `json:"bio" validate:"omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	Education         *string `json:"education" validate:"omitempty"`
}

// UpdateDoctorRequest is a partial update: nil fields are left unchanged.
type UpdateDoctorRequest struct {
	Title             *string `json:"title" validate:"omitempty,min=1"`
	Name              *string `json:"name" validate:"omitempty,min=2"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone" validate:"omitempty,min=10"`
	Specialty         *string `json:"specialty" validate:"omitempty,min=1"`
	Qualification     *string `json:"qualification" validate:"omitempty,min=2"`
	Status            *string `json:"status" validate:"omitempty,doctor_status"`
	Bio               *string `json:"bio" validate:"omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	Education         *string `json:"education" validate:"omitempty"`
}

type DoctorResponse struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"userId"`
	Title             string    `json:"title"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Specialty         string    `json:"specialty"`
	Qualification     string    `json:"qualification"`
	Status            string    `json:"status"`
	Bio               *string   `json:"bio,omitempty"`
	YearsOfExperience *int      `json:"yearsOfExperience,omitempty"`
	Education         *string   `json:"education,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
