package models

import "time"

// Patient holds the clinical profile of a patient account.
type Patient struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	DateOfBirth     *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender          string     `gorm:"size:10" json:"gender,omitempty"`
	Address         string     `gorm:"type:text" json:"address,omitempty"`
	InsuranceNumber string     `gorm:"size:50" json:"insurance_number,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
