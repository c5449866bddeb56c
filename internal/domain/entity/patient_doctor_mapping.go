package entity

import "time"

const (
	MappingStatusActive    = "Active"
	MappingStatusPending   = "Pending"
	MappingStatusCompleted = "Completed"
)

// PatientDoctorMapping assigns a doctor to a patient. A (patient, doctor)
// pair appears at most once.
type PatientDoctorMapping struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    uint       `gorm:"not null;uniqueIndex:uq_patient_doctor_mapping" json:"patientId"`
	DoctorID     uint       `gorm:"not null;uniqueIndex:uq_patient_doctor_mapping" json:"doctorId"`
	Status       string     `gorm:"type:text;not null" json:"status"`
	Notes        *string    `gorm:"type:text" json:"notes,omitempty"`
	AssignedDate time.Time  `gorm:"not null" json:"assignedDate"`
	LastVisit    *time.Time `json:"lastVisit,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
}

func (PatientDoctorMapping) TableName() string {
	return "patient_doctor_mappings"
}
