package entity

import "time"

const (
	PatientStatusActive    = "Active"
	PatientStatusPending   = "Pending"
	PatientStatusCritical  = "Critical"
	PatientStatusRecovered = "Recovered"
)

// Patient is visible and mutable only by the user referenced by UserID.
type Patient struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"userId"`
	FirstName    string     `gorm:"type:text;not null" json:"firstName"`
	LastName     string     `gorm:"type:text;not null" json:"lastName"`
	Email        string     `gorm:"type:text;not null" json:"email"`
	Phone        string     `gorm:"type:text;not null" json:"phone"`
	Age          int        `gorm:"not null" json:"age"`
	Gender       string     `gorm:"type:text;not null" json:"gender"`
	Status       string     `gorm:"type:text;not null" json:"status"`
	MedicalNotes *string    `gorm:"type:text" json:"medicalNotes,omitempty"`
	LastVisit    *time.Time `json:"lastVisit,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// OwnedBy reports whether userID owns the patient.
func (p *Patient) OwnedBy(userID uint) bool {
	return p.UserID == userID
}
