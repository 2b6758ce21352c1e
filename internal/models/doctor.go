package models

import "time"

// Doctor is the professional profile of a doctor account. A doctor belongs
// to exactly one specialty.
type Doctor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	SpecialtyID uint      `gorm:"not null;index" json:"specialty_id"`
	Title       string    `gorm:"size:50" json:"title,omitempty"`
	Bio         string    `gorm:"type:text" json:"bio,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
