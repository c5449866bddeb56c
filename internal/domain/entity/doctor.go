package entity

import "time"

// Doctor is visible and mutable only by the user referenced by UserID.
type Doctor struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"userId"`
	Title             string    `gorm:"type:text;not null" json:"title"`
	Name              string    `gorm:"type:text;not null" json:"name"`
	Email             string    `gorm:"type:text;not null" json:"email"`
	Phone             string    `gorm:"type:text;not null" json:"phone"`
	Specialty         string    `gorm:"type:text;not null" json:"specialty"`
	Qualification     string    `gorm:"type:text;not null" json:"qualification"`
	Status            string    `gorm:"type:text;not null" json:"status"`
	Bio               *string   `gorm:"type:text" json:"bio,omitempty"`
	YearsOfExperience *int      `json:"yearsOfExperience,omitempty"`
	Education         *string   `gorm:"type:text" json:"education,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// OwnedBy reports whether userID owns the doctor.
func (d *Doctor) OwnedBy(userID uint) bool {
	return d.UserID == userID
}
