package converter

import (
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		UserID:            doctor.UserID,
		Title:             doctor.Title,
		Name:              doctor.Name,
		Email:             doctor.Email,
		Phone:             doctor.Phone,
		Specialty:         doctor.Specialty,
		Qualification:     doctor.Qualification,
		Status:            doctor.Status,
		Bio:               doctor.Bio,
		YearsOfExperience: doctor.YearsOfExperience,
		Education:         doctor.Education,
		CreatedAt:         doctor.CreatedAt,
	}
}

func DoctorsToListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}

func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest, userID uint) *entity.Doctor {
	return &entity.Doctor{
		UserID:            userID,
		Title:             req.Title,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Specialty:         req.Specialty,
		Qualification:     req.Qualification,
		Status:            req.Status,
		Bio:               req.Bio,
		YearsOfExperience: req.YearsOfExperience,
		Education:         req.Education,
	}
}

// ApplyDoctorUpdate copies the supplied fields onto doctor and returns the
// column names that changed.
func ApplyDoctorUpdate(doctor *entity.Doctor, req *dto.UpdateDoctorRequest) []string {
	var columns []string

	if req.Title != nil {
		doctor.Title = *req.Title
		columns = append(columns, "title")
	}
	if req.Name != nil {
		doctor.Name = *req.Name
		columns = append(columns, "name")
	}
	if req.Email != nil {
		doctor.Email = *req.Email
		columns = append(columns, "email")
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
		columns = append(columns, "phone")
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
		columns = append(columns, "specialty")
	}
	if req.Qualification != nil {
		doctor.Qualification = *req.Qualification
		columns = append(columns, "qualification")
	}
	if req.Status != nil {
		doctor.Status = *req.Status
		columns = append(columns, "status")
	}
	if req.Bio != nil {
		doctor.Bio = req.Bio
		columns = append(columns, "bio")
	}
	if req.YearsOfExperience != nil {
		doctor.YearsOfExperience = req.YearsOfExperience
		columns = append(columns, "years_of_experience")
	}
	if req.Education != nil {
		doctor.Education = req.Education
		columns = append(columns, "education")
	}

	return columns
}
